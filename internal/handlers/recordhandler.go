package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pavan-459/My-Job-Dasboard/internal/dtos"
	"github.com/pavan-459/My-Job-Dasboard/internal/models"
	"github.com/pavan-459/My-Job-Dasboard/internal/query"
	"github.com/pavan-459/My-Job-Dasboard/internal/store"
)

// ListRecords is the GET /records endpoint: the filtered, sorted view plus
// the aggregate counts over the whole collection.
func (a *App) ListRecords(c *gin.Context) {
	qs := models.QueryState{
		Query:  c.Query("q"),
		Status: c.DefaultQuery("status", models.StatusFilterAll),
		Sort:   models.SortMode(c.DefaultQuery("sort", string(models.SortDateDesc))),
	}

	res := query.Run(storeFrom(c).List(), qs)
	c.JSON(http.StatusOK, gin.H{
		"records":      res.Visible,
		"hidden_count": res.HiddenCount,
		"stats":        res.Stats,
	})
}

// CreateRecord is the POST /records endpoint.
func (a *App) CreateRecord(c *gin.Context) {
	var req dtos.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	rec, err := storeFrom(c).Create(draftFrom(req))
	if err != nil {
		a.renderStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// UpdateRecord is the PUT /records/:id endpoint. An unknown id is not an
// error: the store silently no-ops and the response carries updated=false.
func (a *App) UpdateRecord(c *gin.Context) {
	var req dtos.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	rec, err := storeFrom(c).Update(c.Param("id"), draftFrom(req))
	if err != nil {
		a.renderStoreError(c, err)
		return
	}
	if rec == nil {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true, "record": rec})
}

// DeleteRecord is the DELETE /records/:id endpoint. Deleting an absent id is
// a no-op; confirmation prompts are a client concern.
func (a *App) DeleteRecord(c *gin.Context) {
	if err := storeFrom(c).Delete(c.Param("id")); err != nil {
		a.renderStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func draftFrom(req dtos.RecordRequest) store.Draft {
	return store.Draft{
		Company: req.Company,
		Role:    req.Role,
		Source:  req.Source,
		Status:  models.Status(req.Status),
		Date:    req.Date,
		Notes:   req.Notes,
	}
}

func (a *App) renderStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company and Role are required"})
		return
	}
	a.Log.Error("store operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save records: " + err.Error()})
}
