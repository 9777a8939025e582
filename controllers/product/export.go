package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"

	"github.com/Rifnaz/WLL-Product-App/catalog"
)

// ExportProductsToExcel downloads the current catalog snapshot as an xlsx
// sheet. Price comes from the upstream passthrough fields when present.
// GET /api/Home/ExportProducts
func ExportProductsToExcel(querier *catalog.Querier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := querier.QueryProducts(c.Request.Context(), "", "")
		if err != nil {
			log.Warn("product export failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to fetch the products."})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Title", "Category", "Price"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Title)
			row.AddCell().SetValue(p.Category)

			if raw, ok := p.Extra("price"); ok {
				row.AddCell().SetValue(string(raw))
			} else {
				row.AddCell().SetValue("")
			}
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
