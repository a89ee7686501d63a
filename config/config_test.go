package config

import (
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConfig(t *testing.T) {
	Convey("Given an environment with no environment variables set", t, func() {
		os.Clearenv()
		cfg, err := Get()

		Convey("When the config values are retrieved", func() {

			Convey("Then there should be no error returned", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then the values should be set to the expected defaults", func() {
				So(cfg.EurostatSdmxURL, ShouldEqual, "https://ec.europa.eu/eurostat/api/dissemination/sdmx/2.1")
				So(cfg.EurostatAgencyID, ShouldEqual, "ESTAT")
				So(cfg.EurostatLocale, ShouldEqual, "en")
				So(cfg.DefaultRequestTimeout, ShouldEqual, 10*time.Second)
				So(cfg.UserAgent, ShouldEqual, "larray-eurostat")
			})

			Convey("Then a second call to config should return the same config", func() {
				newCfg, newErr := Get()
				So(newErr, ShouldBeNil)
				So(newCfg, ShouldResemble, cfg)
			})
		})
	})
}
