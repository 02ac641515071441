package geocoder_fx

import (
	"os"

	"go.uber.org/fx"

	"github.com/yuqiannemo/WanderMind/pkg/geocoder"
)

var Module = fx.Provide(
	provideGeocoder)

func provideGeocoder() geocoder.GeocoderInterface {
	return geocoder.NewNominatimGeocoder(os.Getenv("NOMINATIM_URL"))
}
