package render

import (
	"fmt"
	"html/template"
	"regexp"

	"weather-cards/internal/models"
)

// Unit label ids, as carried by the clickable °C / °F labels.
const (
	CelsiusLabel    = "c-temp"
	FahrenheitLabel = "f-temp"
)

const (
	displayBlock = "block"
	displayNone  = "none"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ContainerView is everything the container template needs for one pass.
type ContainerView struct {
	Title  string
	Cards  []CardView
	Notice string
	Errors []string
}

type CardView struct {
	models.Card
	Style template.CSS
	Units UnitPair
	Days  []DayView
}

type DayView struct {
	models.ForecastDay
	Units UnitPair
}

// UnitPair is the display state of a Celsius/Fahrenheit node pair.
type UnitPair struct {
	Celsius          string
	Fahrenheit       string
	CelsiusActive    bool
	FahrenheitActive bool
}

func celsiusPair() UnitPair {
	return UnitPair{Celsius: displayBlock, Fahrenheit: displayNone, CelsiusActive: true}
}

func fahrenheitPair() UnitPair {
	return UnitPair{Celsius: displayNone, Fahrenheit: displayBlock, FahrenheitActive: true}
}

// NewContainerView lays out a render result with Celsius shown.
func NewContainerView(title string, result *models.RenderResult) *ContainerView {
	view := &ContainerView{
		Title:  title,
		Cards:  make([]CardView, 0, len(result.Cards)),
		Notice: result.Notice,
		Errors: result.Errors,
	}

	for _, card := range result.Cards {
		cv := CardView{
			Card:  card,
			Style: backgroundStyle(card.Color),
			Units: celsiusPair(),
			Days:  make([]DayView, 0, len(card.Forecast)),
		}
		for _, day := range card.Forecast {
			cv.Days = append(cv.Days, DayView{ForecastDay: day, Units: celsiusPair()})
		}
		view.Cards = append(view.Cards, cv)
	}

	return view
}

// Toggle switches every value pair of every card to the unit whose label
// was selected. Any other label leaves the view untouched.
func Toggle(view *ContainerView, selected string) {
	var pair UnitPair
	switch selected {
	case CelsiusLabel:
		pair = celsiusPair()
	case FahrenheitLabel:
		pair = fahrenheitPair()
	default:
		return
	}

	for i := range view.Cards {
		view.Cards[i].Units = pair
		for j := range view.Cards[i].Days {
			view.Cards[i].Days[j].Units = pair
		}
	}
}

// backgroundStyle only lets plain hex colors through to the style attribute.
func backgroundStyle(color string) template.CSS {
	if !hexColor.MatchString(color) {
		return ""
	}
	return template.CSS(fmt.Sprintf("background-color: %s", color))
}
