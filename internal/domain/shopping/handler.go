package shopping

import (
	"fmt"
	"net/http"
	"strings"

	"foodgram/internal/logging"
	"foodgram/internal/metrics"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	DefaultFormat = "pdf"
	fileBaseName  = "shopping_cart"
)

type Handler struct {
	aggregator *Aggregator
	renderers  map[string]Renderer
}

// NewHandler serves the formats in renderers, keyed by the ?format= value.
func NewHandler(aggregator *Aggregator, renderers map[string]Renderer) *Handler {
	return &Handler{aggregator: aggregator, renderers: renderers}
}

// DefaultRenderers returns the pdf and txt renderers sharing title and font.
func DefaultRenderers(title, fontPath string) map[string]Renderer {
	return map[string]Renderer{
		"pdf": PDFRenderer{Title: title, FontPath: fontPath},
		"txt": TextRenderer{Title: title},
	}
}

// Download godoc
// @Summary Download the shopping list for the recipes in the cart
// @Tags Shopping cart
// @Security BearerAuth
// @Produce application/pdf
// @Produce text/plain
// @Param format query string false "pdf (default) or txt"
// @Success 200 {file} file
// @Router /recipes/download_shopping_cart [get]
func (h *Handler) Download(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", DefaultFormat))
	renderer, ok := h.renderers[format]
	if !ok {
		response.FromError(c, ErrUnknownFormat)
		return
	}

	ctx := c.Request.Context()
	items, err := h.aggregator.Aggregate(ctx, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	body, err := renderer.Render(items)
	metrics.RecordShoppingList(format, len(items), err)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("format", format).Int64("user_id", userID).Msg("shopping list render failed")
		response.FromError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, fileBaseName, renderer.Extension()))
	c.Data(http.StatusOK, renderer.ContentType(), body)
}
