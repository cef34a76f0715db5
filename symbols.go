package main

// symbolDescriptions maps locationforecast symbol codes to icon-prefixed
// human labels. The contents are an output-compatibility contract with
// existing consumers and are carried over as-is, typos included.
var symbolDescriptions = map[string]string{
	"clearsky_day":                     "☀️ Clear Sky (Day)",
	"fair_day":                         "🌤️ Fair (Day)",
	"partlycloudy_day":                 "⛅ Partly Cloudy (Day)",
	"cloudy":                           "☁️ Cloudy",
	"rainshowers_day":                  "🌦️ Rain Showers (Day)",
	"rainshowersandthunder_day":        "⛈️ Rain Showers and Thunder (Day)",
	"sleetshowers_day":                 "🌨️ Sleet Showers (Day)",
	"snowshowers_day":                  "❄️ Snow Showers (Day)",
	"rain":                             "🌧️ Rain",
	"heavyrain":                        "🌧️ Heavy Rain",
	"heavyrainandthunder":              "⛈️ Heavy Rain and Thunder",
	"sleet":                            "🌨️ Sleet",
	"snow":                             "❄️ Snow",
	"snowandthunder":                   "⛈️ Snow and Thunder",
	"fog":                              "🌫️ Fog",
	"sleetshowersandthunder_day":       "⛈️ Sleet Showers and Thunder (Day)",
	"snowshowersandthunder_day":        "⛈️ Snow Showers and Thunder (Day)",
	"rainandthunder":                   "⛈️ Rain and Thunder",
	"sleetandthunder":                  "⛈️ Sleet and Thunder",
	"lightrainshowersandthunder_day":   "⛈️ Light Rain Showers and Thunder (Day)",
	"heavyrainshowersandthunder_day":   "⛈️ Heavy Rain Showers and Thunder (Day)",
	"lightssleetshowersandthunder_day": "⛈️ Light Sleet Showers and Thunder (Day)",
	"heavysleetshowersandthunder_day":  "⛈️ Heavy Sleet Showers and Thunder (Day)",
	"lightssnowshowersandthunder_day":  "⛈️ Light Snow Showers and Thunder (Day)",
	"heavysnowshowersandthunder_day":   "⛈️ Heavy Snow Showers and Thunder (Day)",
	"lightrainandthunder":              "⛈️ Light Rain and Thunder",
	"lightsleetandthunder":             "⛈️ Light Sleet and Thunder",
	"heavysleetandthunder":             "⛈️ Heavy Sleet and Thunder",
	"lightsnowandthunder":              "⛈️ Light Snow and Thunder",
	"heavysnowandthunder":              "⛈️ Heavy Snow and Thunder",
	"lightrainshowers_day":             "🌦️ Light Rain Showers (Day)",
	"heavyrainshowers_day":             "🌦️ Heavy Rain Showers (Day)",
	"lightsleetshowers_day":            "🌦️ Light Sleet Showers (Day)",
	"heavysleetshowers_day":            "🌦️ Heavy Sleet Showers (Day)",
	"lightsnowshowers_day":             "🌦️ Light Snow Showers (Day)",
	"heavysnowshowers_day":             "🌦️ Heavy Snow Showers (Day)",
	"lightrain":                        "🌧️ Light Rain",
	"lightsleet":                       "🌨️ Light Sleet",
	"heavysleet":                       "🌨️ Heavy Sleet",
	"lightsnow":                        "❄️ Light Snow",
	"heavysnow":                        "❄️ Heavy Snow",
	"clearsky_night":                   "🌙 Clear Sky (Night)",
	"fair_night":                       "🌙 Fair (Night)",
	"partlycloudy_night":               "🌙☁️P Partly Cloudy (Night)",
	"rainshowers_night":                "🌦️ Rain Showers (Night)",
	"rainshowersandthunder_night":      "⛈️ Rain Showers and Thunder (Night)",
	"sleetshowers_night":               "🌨️ Sleet Showers (Night)",
	"snowshowers_night":                "❄️ Snow Showers (Night)",
	"sleetshowersandthunder_night":     "⛈️ Sleet Showers and Thunder (Night)",
	"snowshowersandthunder_night":      "⛈️ Snow Showers and Thunder (Night)",
	"lightrainshowersandthunder_night": "⛈️ Light Rain Showers and Thunder (Night)",
	"heavyrainshowersandthunder_night": "⛈️ Heavy Rain Showers and Thunder (Night)",
	"lightssleetshowersandthunder_night":          "⛈️ Light Sleet Showers and Thunder (Night)",
	"heavysleetshowersandthunder_night":           "⛈️ Heavy Sleet Showers and Thunder (Night)",
	"lightssnowshowersandthunder_night":           "⛈️ Light Snow Showers and Thunder (Night)",
	"heavysnowshowersandthunder_night":            "⛈️ Heavy Snow Showers and Thunder (Night)",
	"lightrainshowers_night":                      "🌦️ Light Rain Showers (Night)",
	"heavyrainshowers_night":                      "🌦️ Heavy Rain Showers (Night)",
	"lightsleetshowers_night":                     "🌦️ Light Sleet Showers (Night)",
	"heavysleetshowers_night":                     "🌦️ Heavy Sleet Showers (Night)",
	"lightsnowshowers_night":                      "🌦️ Light Snow Showers (Night)",
	"heavysnowshowers_night":                      "🌦️ Heavy Snow Showers (Night)",
	"clearsky_polartwilight":                      "🌌 Clear Sky (Polar Twilight)",
	"fair_polartwilight":                          "🌌 Fair (Polar Twilight)",
	"partlycloudy_polartwilight":                  "🌌 Partly Cloudy (Polar Twilight)",
	"rainshowers_polartwilight":                   "🌌 Rain Showers (Polar Twilight)",
	"rainshowersandthunder_polartwilight":         "🌌 Rain Showers and Thunder (Polar Twilight)",
	"sleetshowers_polartwilight":                  "🌌 Sleet Showers (Polar Twilight)",
	"snowshowers_polartwilight":                   "🌌 Snow Showers (Polar Twilight)",
	"sleetshowersandthunder_polartwilight":        "🌌 Sleet Showers and Thunder (Polar Twilight)",
	"snowshowersandthunder_polartwilight":         "🌌 Snow Showers and Thunder (Polar Twilight)",
	"lightrainshowersandthunder_polartwilight":    "🌌 Light Rain Showers and Thunder (Polar Twilight)",
	"heavyrainshowersandthunder_polartwilight":    "🌌 Heavy Rain Showers and Thunder (Polar Twilight)",
	"lightssleetshowersandthunder_polartwilight":  "🌌 Light Sleet Showers and Thunder (Polar Twilight)",
	"heavysleetshowersandthunder_polartwilight":   "🌌 Heavy Sleet Showers and Thunder (Polar Twilight)",
	"lightssnowshowersandthunder_polartwilight":   "🌌 Light Snow Showers and Thunder (Polar Twilight)",
	"heavysnowshowersandthunder_polartwilight":    "🌌 Heavy Snow Showers and Thunder (Polar Twilight)",
	"lightrainshowers_polartwilight":              "🌌 Light Rain Showers (Polar Twilight)",
	"heavyrainshowers_polartwilight":              "🌌 Heavy Rain Showers (Polar Twilight)",
	"lightsleetshowers_polartwilight":             "🌌 Light Sleet Showers (Polar Twilight)",
	"heavysleetshowers_polartwilight":             "🌌 Heavy Sleet Showers (Polar Twilight)",
	"lightsnowshowers_polartwilight":              "🌌 Light Snow Showers (Polar Twilight)",
	"heavysnowshowers_polartwilight":              "🌌 Heavy Snow Showers (Polar Twilight)",
}

// DescribeSymbol returns the human-readable description for a symbol code.
// Codes not in the table are returned unchanged rather than treated as an
// error, so new upstream codes degrade gracefully.
func DescribeSymbol(code string) string {
	if desc, ok := symbolDescriptions[code]; ok {
		return desc
	}
	return code
}
