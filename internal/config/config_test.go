package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 5000, Mode: "release"},
		Gemini: GeminiConfig{
			APIKey: "key",
			Models: []string{"gemini-2.0-flash"},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	Convey("Config.Validate enforces startup requirements", t, func() {
		Convey("a complete config passes", func() {
			So(validConfig().Validate(), ShouldBeNil)
		})

		Convey("the process must not start without an API key", func() {
			cfg := validConfig()
			cfg.Gemini.APIKey = ""
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("the model queue must not be empty", func() {
			cfg := validConfig()
			cfg.Gemini.Models = nil
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("the port must be in range", func() {
			cfg := validConfig()
			cfg.Server.Port = 0
			So(cfg.Validate(), ShouldNotBeNil)

			cfg.Server.Port = 70000
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("the mode must be debug, release or test", func() {
			cfg := validConfig()
			cfg.Server.Mode = "production"
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("max_retries must not be negative", func() {
			cfg := validConfig()
			cfg.Gemini.MaxRetries = -1
			So(cfg.Validate(), ShouldNotBeNil)
		})
	})
}
