package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-cards/internal/models"
	"weather-cards/internal/render"
)

const renderCompleteHeader = "X-Render-Complete"

var ErrNoCities = errors.New("at least one city parameter is required")

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid data view: unexpected end of JSON input"`
}

// RenderHTML godoc
// @Summary Render weather cards
// @Description Builds one weather card per city of the data view (first 20 only) and returns the HTML container with the °C/°F toggle.
// @Tags Cards
// @Accept json
// @Produce html
// @Param view body models.DataView true "Host data view"
// @Param unit query string false "Initially active unit" Enums(c, f)
// @Success 200 {string} string "HTML container"
// @Failure 400 {object} ErrorResponse "Bad request - malformed data view"
// @Router /render [post]
func (r *routes) handleRenderHTML(c *fiber.Ctx) error {
	view, err := parseDataView(c)
	if err != nil {
		return badRequest(c, err)
	}

	return r.renderHTML(c, view)
}

// RenderHTMLFromQuery godoc
// @Summary Render weather cards from query parameters
// @Description Same as POST /render, with the cities given as repeated city=<id>:<hex color> parameters.
// @Tags Cards
// @Produce html
// @Param city query []string true "City id and color, e.g. 2643743:#4f81bd" collectionFormat(multi)
// @Param unit query string false "Initially active unit" Enums(c, f)
// @Success 200 {string} string "HTML container"
// @Failure 400 {object} ErrorResponse "Bad request - invalid city parameter"
// @Router /render [get]
//
//	curl -G "http://localhost:8080/render" --data-urlencode "city=2643743:#4f81bd" --data-urlencode "city=5128581:#c0504d"
func (r *routes) handleRenderQuery(c *fiber.Ctx) error {
	var raw []string
	for _, v := range c.Context().QueryArgs().PeekMulti("city") {
		raw = append(raw, string(v))
	}

	view, err := parseCityParams(raw)
	if err != nil {
		return badRequest(c, err)
	}

	return r.renderHTML(c, view)
}

// RenderCards godoc
// @Summary Build weather cards as JSON
// @Description Builds the cards of the data view without rendering them.
// @Tags Cards
// @Accept json
// @Produce json
// @Param view body models.DataView true "Host data view"
// @Success 200 {object} models.RenderResult "Cards in host order"
// @Failure 400 {object} ErrorResponse "Bad request - malformed data view"
// @Failure 422 {object} models.RenderResult "The data view carries errors, no cards built"
// @Router /cards [post]
func (r *routes) handleCards(c *fiber.Ctx) error {
	view, err := parseDataView(c)
	if err != nil {
		return badRequest(c, err)
	}

	result := r.service.Render(c.Context(), view)
	c.Set(renderCompleteHeader, "true")

	if len(result.Errors) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}

	return c.JSON(result)
}

// RenderPNG godoc
// @Summary Export weather cards as an image
// @Description Renders the container and captures it as a PNG through headless Chrome.
// @Tags Cards
// @Accept json
// @Produce png
// @Param view body models.DataView true "Host data view"
// @Param unit query string false "Initially active unit" Enums(c, f)
// @Success 200 {file} binary "PNG snapshot"
// @Failure 400 {object} ErrorResponse "Bad request - malformed data view"
// @Failure 500 {object} ErrorResponse "Snapshot failed"
// @Router /render.png [post]
func (r *routes) handleRenderPNG(c *fiber.Ctx) error {
	view, err := parseDataView(c)
	if err != nil {
		return badRequest(c, err)
	}

	container := r.containerView(c, view)

	buf, err := r.renderer.PNG(c.Context(), container)
	if err != nil {
		r.l.Error(err, map[string]any{"cards": len(container.Cards)})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to export weather cards",
		})
	}

	c.Set(renderCompleteHeader, "true")
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf)
}

func (r *routes) renderHTML(c *fiber.Ctx, view models.DataView) error {
	container := r.containerView(c, view)

	html, err := r.renderer.HTML(container)
	if err != nil {
		r.l.Error(err, map[string]any{"cards": len(container.Cards)})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to render weather cards",
		})
	}

	c.Set(renderCompleteHeader, "true")
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (r *routes) containerView(c *fiber.Ctx, view models.DataView) *render.ContainerView {
	result := r.service.Render(c.Context(), view)

	container := render.NewContainerView(r.title, result)
	if strings.EqualFold(c.Query("unit"), "f") {
		render.Toggle(container, render.FahrenheitLabel)
	}

	return container
}

func parseDataView(c *fiber.Ctx) (models.DataView, error) {
	var view models.DataView
	if err := c.BodyParser(&view); err != nil {
		return view, fmt.Errorf("invalid data view: %w", err)
	}
	return view, nil
}

// parseCityParams reads "<id>:<color>" pairs; the color part is optional.
func parseCityParams(raw []string) (models.DataView, error) {
	var view models.DataView
	if len(raw) == 0 {
		return view, ErrNoCities
	}

	for _, param := range raw {
		idPart, color, _ := strings.Cut(param, ":")
		id, err := strconv.Atoi(strings.TrimSpace(idPart))
		if err != nil {
			return view, fmt.Errorf("invalid city parameter %q", param)
		}
		view.Rows = append(view.Rows, models.Row{
			CityID: models.CityID(id),
			Color:  strings.TrimSpace(color),
		})
	}

	return view, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
}
