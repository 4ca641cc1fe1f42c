package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pavan-459/My-Job-Dasboard/internal/codec"
)

// ExportRecords is the GET /records/export endpoint (format=json|csv).
// The whole collection is exported regardless of active filters.
func (a *App) ExportRecords(c *gin.Context) {
	records := storeFrom(c).List()

	switch c.DefaultQuery("format", "json") {
	case "json":
		data, err := codec.ExportJSON(records)
		if err != nil {
			a.Log.Error("json export failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed: " + err.Error()})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+codec.JSONFilename+`"`)
		c.Data(http.StatusOK, "application/json", data)
	case "csv":
		data, err := codec.ExportCSV(records)
		if err != nil {
			a.Log.Error("csv export failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed: " + err.Error()})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+codec.CSVFilename+`"`)
		c.Data(http.StatusOK, "text/csv", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown export format"})
	}
}

// ImportRecords is the POST /records/import endpoint. It replaces the whole
// collection with the uploaded backup; a payload that is not a JSON array is
// rejected and nothing changes.
func (a *App) ImportRecords(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A JSON file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}

	records, err := codec.ImportJSON(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	if err := storeFrom(c).ReplaceAll(records); err != nil {
		a.renderStoreError(c, err)
		return
	}
	a.Log.Info("records imported", zap.Int("count", len(records)))
	c.JSON(http.StatusOK, gin.H{"imported": len(records)})
}
