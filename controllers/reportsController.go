package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/kamau-dev/shopApp/database"
	"github.com/kamau-dev/shopApp/store"
)

const dateLayout = "2006-01-02"

func parseDateQuery(c *gin.Context, key string) (time.Time, bool) {
	value := c.Query(key)
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s, want YYYY-MM-DD", key)})
		return time.Time{}, false
	}
	return parsed, true
}

func GetDailyRevenue(c *gin.Context) {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	revenue, err := store.DailyRevenue(c.Request.Context(), database.DB, date)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":    date.Format(dateLayout),
		"revenue": revenue,
	})
}

func GetTopSellers(c *gin.Context) {
	start, ok := parseDateQuery(c, "start")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end")
	if !ok {
		return
	}

	results, err := store.TopSellers(c.Request.Context(), database.DB, start, end)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func GetHighSpenders(c *gin.Context) {
	windowDays, err := strconv.Atoi(c.DefaultQuery("window_days", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window_days"})
		return
	}
	threshold, err := strconv.ParseFloat(c.DefaultQuery("threshold", "500"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid threshold"})
		return
	}

	window := time.Duration(windowDays) * 24 * time.Hour
	results, err := store.HighSpenders(c.Request.Context(), database.DB, time.Now(), window, threshold)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func GetInventoryValue(c *gin.Context) {
	totalValue, err := store.InventoryValue(c.Request.Context(), database.DB)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalValue": totalValue})
}

func GetLowStock(c *gin.Context) {
	threshold, err := strconv.Atoi(c.DefaultQuery("threshold", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid threshold"})
		return
	}

	products, err := store.LowStock(c.Request.Context(), database.DB, threshold)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

type GenerateReportRequest struct {
	ReportType string  `json:"reportType" binding:"required"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	WindowDays int     `json:"windowDays"`
	Threshold  float64 `json:"threshold"`
}

// GenerateReport renders one of the reports as a downloadable PDF.
func GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	headers, rows, title, err := fetchReportData(c, req)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	pdf := generatePDF(headers, rows, title)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_report.pdf", req.ReportType))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func fetchReportData(c *gin.Context, req GenerateReportRequest) ([]string, [][]string, string, error) {
	ctx := c.Request.Context()

	switch req.ReportType {
	case "daily-revenue":
		date, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, nil, "", &store.InvalidArgument{Reason: "invalid startDate: " + err.Error()}
		}
		revenue, err := store.DailyRevenue(ctx, database.DB, date)
		if err != nil {
			return nil, nil, "", err
		}
		rows := [][]string{{date.Format(dateLayout), fmt.Sprintf("%.2f", revenue)}}
		return []string{"Date", "Revenue"}, rows, "Daily Revenue Report", nil

	case "top-sellers":
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, nil, "", &store.InvalidArgument{Reason: "invalid startDate: " + err.Error()}
		}
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, nil, "", &store.InvalidArgument{Reason: "invalid endDate: " + err.Error()}
		}
		results, err := store.TopSellers(ctx, database.DB, start, end)
		if err != nil {
			return nil, nil, "", err
		}
		var rows [][]string
		for _, r := range results {
			rows = append(rows, []string{strconv.FormatUint(uint64(r.ProductID), 10), r.Name, strconv.FormatInt(r.TotalQuantity, 10)})
		}
		return []string{"Product ID", "Product", "Quantity Sold"}, rows, "Top Selling Products", nil

	case "high-spenders":
		windowDays := req.WindowDays
		if windowDays == 0 {
			windowDays = 30
		}
		window := time.Duration(windowDays) * 24 * time.Hour
		results, err := store.HighSpenders(ctx, database.DB, time.Now(), window, req.Threshold)
		if err != nil {
			return nil, nil, "", err
		}
		var rows [][]string
		for _, r := range results {
			rows = append(rows, []string{r.FirstName + " " + r.LastName, r.Email, fmt.Sprintf("%.2f", r.TotalSpent)})
		}
		return []string{"Customer", "Email", "Total Spent"}, rows, "High Spending Customers", nil

	default:
		return nil, nil, "", &store.InvalidArgument{Reason: "invalid report type"}
	}
}

func generatePDF(headers []string, rows [][]string, title string) []byte {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	// Report Title
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	colWidth := 190.0 / float64(len(headers))

	// Table Header
	pdf.SetFont("Arial", "B", 12)
	for _, h := range headers {
		pdf.CellFormat(colWidth, 10, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	// Table Rows
	pdf.SetFont("Arial", "", 12)
	for _, row := range rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 10, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
