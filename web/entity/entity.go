// Package entity defines data structures used by the web layer of lead-ui.
package entity

import (
	"math"
	"net"
	"strings"
	"time"

	"lead-ui/util/common"
)

// AllSetting contains the runtime configuration of the panel.
type AllSetting struct {
	WebListen     string `json:"webListen" form:"webListen"`
	WebDomain     string `json:"webDomain" form:"webDomain"`
	WebPort       int    `json:"webPort" form:"webPort"`
	WebCertFile   string `json:"webCertFile" form:"webCertFile"`
	WebKeyFile    string `json:"webKeyFile" form:"webKeyFile"`
	WebBasePath   string `json:"webBasePath" form:"webBasePath"`
	SessionMaxAge int    `json:"sessionMaxAge" form:"sessionMaxAge"`
	TimeLocation  string `json:"timeLocation" form:"timeLocation"`
}

// CheckValid validates the settings, checking the listen address, port, and
// time location.
func (s *AllSetting) CheckValid() error {
	if s.WebListen != "" {
		ip := net.ParseIP(s.WebListen)
		if ip == nil {
			return common.NewError("web listen is not valid ip:", s.WebListen)
		}
	}

	if s.WebPort <= 0 || s.WebPort > math.MaxUint16 {
		return common.NewError("web port is not a valid port:", s.WebPort)
	}

	if !strings.HasPrefix(s.WebBasePath, "/") {
		s.WebBasePath = "/" + s.WebBasePath
	}
	if !strings.HasSuffix(s.WebBasePath, "/") {
		s.WebBasePath += "/"
	}

	_, err := time.LoadLocation(s.TimeLocation)
	if err != nil {
		return common.NewError("time location not exist:", s.TimeLocation)
	}

	return nil
}
