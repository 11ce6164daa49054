package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-cards/internal/render"
	"weather-cards/internal/services/cards"
	"weather-cards/pkg/logger"
)

type routes struct {
	service  *cards.CardService
	renderer *render.Renderer
	title    string
	l        *logger.Logger
}

func NewRouter(
	app *fiber.App,
	cardService *cards.CardService,
	renderer *render.Renderer,
	title string,
	l *logger.Logger,
) {
	r := &routes{
		service:  cardService,
		renderer: renderer,
		title:    title,
		l:        l,
	}

	// Swagger documentation, registered by the docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Post("/render", r.handleRenderHTML)
	app.Get("/render", r.handleRenderQuery)
	app.Post("/render.png", r.handleRenderPNG)
	app.Post("/cards", r.handleCards)
}
