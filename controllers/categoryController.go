package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamau-dev/shopApp/database"
	"github.com/kamau-dev/shopApp/store"
)

func CreateCategory(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required,min=2,max=50"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := store.CreateCategory(database.DB, input.Name)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func GetCategories(c *gin.Context) {
	categories, err := store.ListCategories(database.DB)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := store.GetCategory(database.DB, id)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func GetCategoryProducts(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := store.GetCategory(database.DB, id); err != nil {
		handleStoreError(c, err)
		return
	}

	products, err := store.ListProducts(database.DB.Where("category_id = ?", id))
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func EditCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input struct {
		Name string `json:"name" binding:"required,min=2,max=50"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := store.UpdateCategory(database.DB, id, input.Name)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": category})
}

func DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := store.DeleteCategory(database.DB, id); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
