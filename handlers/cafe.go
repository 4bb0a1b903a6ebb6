package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cafe-api/config"
	"cafe-api/models"
	"cafe-api/repository"

	"github.com/gin-gonic/gin"
)

type CafeHandler struct {
	Repo     *repository.CafeRepository
	BoolMode config.BoolMode
}

func NewCafeHandler(repo *repository.CafeRepository, mode config.BoolMode) *CafeHandler {
	return &CafeHandler{Repo: repo, BoolMode: mode}
}

// Random returns one stored cafe chosen uniformly
func (h *CafeHandler) Random(c *gin.Context) {
	cafe, err := h.Repo.Random()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cafe": cafe.ToMap()})
}

// All returns every stored cafe
func (h *CafeHandler) All(c *gin.Context) {
	cafes, err := h.Repo.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cafes": models.ToMaps(cafes)})
}

// Search filters cafes by exact location (?loc=)
func (h *CafeHandler) Search(c *gin.Context) {
	cafes, err := h.Repo.FindByLocation(c.Query("loc"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(cafes) == 0 {
		c.JSON(http.StatusOK, gin.H{"error": gin.H{"Not Found": "There is no cafe at this location."}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cafes": models.ToMaps(cafes)})
}

// Add creates a cafe from a form-encoded body
func (h *CafeHandler) Add(c *gin.Context) {
	cafe := models.Cafe{
		Name:         c.PostForm("name"),
		MapURL:       c.PostForm("map_url"),
		ImgURL:       c.PostForm("img_url"),
		Location:     c.PostForm("loc"),
		Seats:        c.PostForm("seats"),
		HasSockets:   formBool(c, "sockets", h.BoolMode),
		HasToilet:    formBool(c, "toilet", h.BoolMode),
		HasWifi:      formBool(c, "wifi", h.BoolMode),
		CanTakeCalls: formBool(c, "calls", h.BoolMode),
	}
	if price, ok := c.GetPostForm("coffee_price"); ok {
		cafe.CoffeePrice = &price
	}

	if err := h.Repo.Insert(&cafe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": gin.H{"success": "The new cafe was added."}})
}

// UpdatePrice sets coffee_price from ?new_price= on the cafe in the path
func (h *CafeHandler) UpdatePrice(c *gin.Context) {
	id, ok := cafeID(c)
	if !ok {
		return
	}
	newPrice, ok := c.GetQuery("new_price")
	if !ok {
		c.JSON(http.StatusOK, gin.H{"response": gin.H{"error": "new_price is required"}})
		return
	}

	cafe, err := h.Repo.UpdateField(id, "coffee_price", newPrice)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusOK, gin.H{"response": gin.H{
			"error": "A cafe with that id was not found inside the database",
		}})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": gin.H{
		"success": "Successfully updated the price for " + cafe.Name + " cafe for " + newPrice,
	}})
}

// ReportClosed deletes the cafe in the path. The API key is checked by
// middleware before this runs.
func (h *CafeHandler) ReportClosed(c *gin.Context) {
	id, ok := cafeID(c)
	if !ok {
		return
	}

	cafe, err := h.Repo.Delete(id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusOK, gin.H{"response": gin.H{"Error": "Cafe not found"}})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": gin.H{
		"Success": "Successfully deleted the " + cafe.Name + " cafe from the database.",
	}})
}

// cafeID parses the :id path segment, answering 404 when it is not a
// positive integer.
func cafeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid cafe id"})
		return 0, false
	}
	return uint(id), true
}
