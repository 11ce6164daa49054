package render

const containerTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>{{.Title}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      background: #f4f5f7;
      font-family: "Segoe UI", "Helvetica Neue", Arial, sans-serif;
      color: #ffffff;
    }
    #mod-container {
      display: flex;
      flex-wrap: wrap;
      gap: 16px;
      padding: 24px;
    }
    .error-overlay, .notice {
      width: 100%;
      padding: 12px 16px;
      border-radius: 6px;
      color: #1f1f1f;
    }
    .error-overlay { background: #fde2e1; border: 1px solid #d83a3a; }
    .notice { background: #fff4d6; border: 1px solid #e0a800; }
    .weather-container {
      width: 392px;
      padding: 16px 20px;
      border-radius: 10px;
      background-color: #4f81bd;
      display: grid;
      grid-template-columns: 1fr auto;
      row-gap: 8px;
    }
    .location { font-size: 22px; font-weight: 600; }
    .weather-type, .time-wind-humid-box { font-size: 13px; opacity: 0.9; }
    .weather-icon img { width: 110px; height: 110px; }
    .temperature { display: flex; align-items: flex-start; gap: 4px; }
    .temp-value { font-size: 56px; font-weight: 300; line-height: 1; }
    .temp-unit { cursor: pointer; opacity: 0.6; font-size: 16px; }
    .temp-unit.active { opacity: 1; font-weight: 600; }
    .seperator { width: 1px; height: 16px; background: #ffffff; margin: 2px 4px; }
    .weather-forecast {
      grid-column: 1 / span 2;
      display: flex;
      justify-content: space-between;
      border-top: 1px solid rgba(255, 255, 255, 0.3);
      padding-top: 8px;
    }
    .forecast-container { text-align: center; font-size: 12px; }
    .forecast-icon img { width: 40px; height: 40px; }
  </style>
</head>
<body>
<div id="mod-container">
  {{- if .Errors}}
  <div class="error-overlay">
    {{- range .Errors}}
    <div>{{.}}</div>
    {{- end}}
  </div>
  {{- end}}
  {{- if .Notice}}
  <div class="notice">{{.Notice}}</div>
  {{- end}}
  {{- range .Cards}}
  <div class="weather-container" data-city-id="{{.CityID}}" style="{{.Style}}">
    <div class="loc-weather-type-box">
      <div class="location">{{.Location}}</div>
      <div class="weather-type">{{.WeatherLine}}</div>
    </div>
    <div class="time-wind-humid-box">
      <div class="time">{{.Time}}</div>
      <div class="wind">{{.Wind}}</div>
      <div class="humidity">{{.Humidity}}</div>
    </div>
    <div class="weather-icon"><img src="{{.IconURL}}" alt="" /></div>
    <div class="temperature">
      <div class="temp-value c-value" style="display: {{.Units.Celsius}}">{{.TempC}}</div>
      <div class="temp-value f-value" style="display: {{.Units.Fahrenheit}}">{{.TempF}}</div>
      <div class="temp-unit c-temp{{if .Units.CelsiusActive}} active{{end}}" data-unit="c-temp">°C</div>
      <div class="seperator"></div>
      <div class="temp-unit f-temp{{if .Units.FahrenheitActive}} active{{end}}" data-unit="f-temp">°F</div>
    </div>
    <div class="weather-forecast">
      {{- range .Days}}
      <div class="forecast-container">
        <div class="day">{{.Day}}</div>
        <div class="forecast-icon"><img src="{{.IconURL}}" alt="" /></div>
        <div class="forecast-min-max forecast-c-value" style="display: {{.Units.Celsius}}">{{.HighC}} / {{.LowC}}</div>
        <div class="forecast-min-max forecast-f-value" style="display: {{.Units.Fahrenheit}}">{{.HighF}} / {{.LowF}}</div>
      </div>
      {{- end}}
    </div>
  </div>
  {{- end}}
</div>
<script>
  (function () {
    function show(selector, display) {
      document.querySelectorAll(selector).forEach(function (el) { el.style.display = display; });
    }
    function toggle(event) {
      var selected = event.currentTarget.getAttribute("data-unit");
      var fahrenheit = selected === "f-temp";
      if (!fahrenheit && selected !== "c-temp") {
        return;
      }
      show(".c-value, .forecast-c-value", fahrenheit ? "none" : "block");
      show(".f-value, .forecast-f-value", fahrenheit ? "block" : "none");
      document.querySelectorAll(".c-temp").forEach(function (el) { el.classList.toggle("active", !fahrenheit); });
      document.querySelectorAll(".f-temp").forEach(function (el) { el.classList.toggle("active", fahrenheit); });
    }
    document.querySelectorAll(".temp-unit").forEach(function (el) {
      el.addEventListener("click", toggle);
    });
  })();
</script>
</body>
</html>
`
