// Package icons maps weather condition text to display assets.
package icons

import "strings"

// Asset is what the screen shows for a condition: Image names the bundled
// picture, Glyph is its terminal stand-in.
type Asset struct {
	Image string
	Glyph string
}

var (
	sun          = Asset{Image: "sun.png", Glyph: "☀"}
	partlyCloudy = Asset{Image: "partlycloudy.png", Glyph: "⛅"}
	cloud        = Asset{Image: "cloud.png", Glyph: "☁"}
	moderateRain = Asset{Image: "moderaterain.png", Glyph: "🌦"}
	heavyRain    = Asset{Image: "heavyrain.png", Glyph: "🌧"}
	thunder      = Asset{Image: "heavyrain.png", Glyph: "⛈"}
	mist         = Asset{Image: "mist.png", Glyph: "🌫"}
	snow         = Asset{Image: "snow.png", Glyph: "❄"}
)

// Placeholder is returned for condition text with no entry.
var Placeholder = moderateRain

var assets = map[string]Asset{
	"sunny":                               sun,
	"clear":                               sun,
	"partly cloudy":                       partlyCloudy,
	"cloudy":                              cloud,
	"overcast":                            cloud,
	"mist":                                mist,
	"fog":                                 mist,
	"freezing fog":                        mist,
	"patchy rain possible":                moderateRain,
	"patchy rain nearby":                  moderateRain,
	"patchy light drizzle":                moderateRain,
	"light drizzle":                       moderateRain,
	"freezing drizzle":                    moderateRain,
	"light rain":                          moderateRain,
	"light rain shower":                   moderateRain,
	"moderate rain":                       moderateRain,
	"moderate rain at times":              moderateRain,
	"heavy rain":                          heavyRain,
	"heavy rain at times":                 heavyRain,
	"moderate or heavy freezing rain":     heavyRain,
	"moderate or heavy rain shower":       heavyRain,
	"torrential rain shower":              heavyRain,
	"patchy light rain with thunder":      thunder,
	"moderate or heavy rain with thunder": thunder,
	"thundery outbreaks possible":         thunder,
	"light snow":                          snow,
	"moderate snow":                       snow,
	"heavy snow":                          snow,
	"light snow showers":                  snow,
	"moderate or heavy snow showers":      snow,
	"ice pellets":                         snow,
	"blizzard":                            snow,
}

// For returns the asset for a condition label. Matching ignores case and
// surrounding spaces (providers send both "Partly cloudy" and
// "Partly Cloudy "). Unknown labels get Placeholder and false.
func For(conditionText string) (Asset, bool) {
	asset, ok := assets[strings.ToLower(strings.TrimSpace(conditionText))]
	if !ok {
		return Placeholder, false
	}
	return asset, true
}
