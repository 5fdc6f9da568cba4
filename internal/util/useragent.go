package util

import (
	"strings"

	"github.com/mssola/useragent"
)

// Device types recorded on affiliate clicks.
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
	DeviceBot     = "bot"
)

// DeviceType classifies a User-Agent header. An empty header yields "".
func DeviceType(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return ""
	}

	ua := useragent.New(userAgent)
	android := strings.HasPrefix(ua.OS(), "Android")

	switch {
	case ua.Bot():
		return DeviceBot
	case ua.Platform() == "iPad", android && !strings.Contains(userAgent, "Mobile"):
		// Android tablets omit the Mobile token.
		return DeviceTablet
	case ua.Mobile(), android, ua.Platform() == "iPhone", ua.Platform() == "iPod":
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}
