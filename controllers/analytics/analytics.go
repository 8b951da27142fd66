package analyticsControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ross563/e-commerse-store/models"
)

type AnalyticsData struct {
	Users        int64   `json:"users"`
	Products     int64   `json:"products"`
	TotalSales   int64   `json:"totalSales"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type DailySalesData struct {
	Date    string  `json:"date"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

func getAnalyticsData(db *gorm.DB) (AnalyticsData, error) {
	var data AnalyticsData
	if err := db.Model(&models.User{}).Count(&data.Users).Error; err != nil {
		return data, err
	}
	if err := db.Model(&models.Product{}).Count(&data.Products).Error; err != nil {
		return data, err
	}

	var sales struct {
		TotalSales   int64
		TotalRevenue float64
	}
	if err := db.Model(&models.Order{}).
		Select("COUNT(*) AS total_sales, COALESCE(SUM(total_amount), 0) AS total_revenue").
		Scan(&sales).Error; err != nil {
		return data, err
	}
	data.TotalSales = sales.TotalSales
	data.TotalRevenue = sales.TotalRevenue
	return data, nil
}

// getDailySalesData buckets orders per day over [start, end], filling empty
// days with zeroes. Bucketing happens here rather than in SQL to stay
// portable across drivers.
func getDailySalesData(db *gorm.DB, start, end time.Time) ([]DailySalesData, error) {
	var orders []models.Order
	if err := db.Where("created_at BETWEEN ? AND ?", start, end).Find(&orders).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		sales   int
		revenue float64
	}
	byDate := make(map[string]bucket)
	for _, order := range orders {
		key := order.CreatedAt.Format("2006-01-02")
		b := byDate[key]
		b.sales++
		b.revenue += order.TotalAmount
		byDate[key] = b
	}

	var daily []DailySalesData
	for day := start; !day.After(end); day = day.Add(24 * time.Hour) {
		key := day.Format("2006-01-02")
		b := byDate[key]
		daily = append(daily, DailySalesData{Date: key, Sales: b.sales, Revenue: b.revenue})
	}
	return daily, nil
}

// GET /api/analytics (admin)
func GetAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		analyticsData, err := getAnalyticsData(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		end := time.Now()
		start := end.Add(-7 * 24 * time.Hour)
		dailySalesData, err := getDailySalesData(db, start, end)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"analyticsData":  analyticsData,
			"dailySalesData": dailySalesData,
		})
	}
}
