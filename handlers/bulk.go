package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"cafe-api/config"
	"cafe-api/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const maxImportSize = 5 << 20

var requiredImportColumns = []string{"name", "map_url", "img_url", "location", "seats"}

type skippedRow struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// BulkAdd imports cafes from the first sheet of an uploaded .xlsx file.
// Row 1 names the columns; rows that fail to insert are reported back and
// do not stop the import.
func (h *CafeHandler) BulkAdd(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
		return
	}
	if fileHeader.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file exceeds 5MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
		return
	}
	defer xl.Close()

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file has no sheets"})
		return
	}
	rows, err := xl.GetRows(sheets[0])
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel must have a header row and at least one row of data"})
		return
	}

	index := headerIndex(rows[0])
	for _, col := range requiredImportColumns {
		if _, ok := index[col]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing column: " + col})
			return
		}
	}

	imported := 0
	skipped := []skippedRow{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		if blankRow(row) {
			continue
		}
		cafe := cafeFromRow(row, index)
		if err := h.Repo.Insert(&cafe); err != nil {
			skipped = append(skipped, skippedRow{Row: rowNum, Error: err.Error()})
			continue
		}
		imported++
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": fmt.Sprintf("Imported %d cafes.", imported)},
		"skipped":  skipped,
	})
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "loc" {
			key = "location"
		}
		if _, dup := index[key]; !dup && key != "" {
			index[key] = i
		}
	}
	return index
}

// cafeFromRow reads cells by column name. Spreadsheet booleans are typed
// values, so they always go through strict parsing.
func cafeFromRow(row []string, index map[string]int) models.Cafe {
	cell := func(col string) (string, bool) {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}
	str := func(col string) string {
		v, _ := cell(col)
		return v
	}
	flag := func(col string) bool {
		return parseBool(str(col), config.BoolStrict)
	}

	cafe := models.Cafe{
		Name:         str("name"),
		MapURL:       str("map_url"),
		ImgURL:       str("img_url"),
		Location:     str("location"),
		Seats:        str("seats"),
		HasToilet:    flag("has_toilet"),
		HasWifi:      flag("has_wifi"),
		HasSockets:   flag("has_sockets"),
		CanTakeCalls: flag("can_take_calls"),
	}
	if price, ok := cell("coffee_price"); ok && price != "" {
		cafe.CoffeePrice = &price
	}
	return cafe
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
