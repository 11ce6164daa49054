package cards

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thur", "Fri", "Sat"}

var cardinalDirections = [8]string{"↑ N", "↗ NE", "→ E", "↘ SE", "↓ S", "↙ SW", "← W", "↖ NW"}

// round rounds half up, so -0.5 becomes 0 and 2.5 becomes 3.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func toFahrenheit(celsius int) int {
	return round(float64(celsius)*9/5 + 32)
}

// dayOfWeek labels the day offset days after today.
func dayOfWeek(today time.Weekday, offset int) string {
	return weekdayLabels[mod(int(today)+offset, 7)]
}

func cardinal(deg float64) string {
	return cardinalDirections[mod(round(deg/45), 8)]
}

// localTime formats a unix timestamp in the place's own UTC offset.
func localTime(unix int64, offsetSeconds int) string {
	return time.Unix(unix+int64(offsetSeconds), 0).UTC().Format("Jan 2, 3:04 PM")
}

func weatherLine(description string, visibilityMeters int) string {
	return fmt.Sprintf("%s. Visibility %d KM", description, round(float64(visibilityMeters)/1000))
}

func windLine(deg, speed float64) string {
	return fmt.Sprintf("Wind: %s %s m/s", cardinal(deg), strconv.FormatFloat(speed, 'f', -1, 64))
}

func humidityLine(humidity float64) string {
	return fmt.Sprintf("Humidity: %d %%", round(humidity))
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
