package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ApplyProxyConfig makes c.IP() honour X-Forwarded-For only when the peer is one of
// trusted (IPs or CIDRs). With nothing trusted the header is ignored, so clients
// cannot pick their own rate-limit key.
func ApplyProxyConfig(cfg *fiber.Config, trusted []string) {
	proxies := make([]string, 0, len(trusted))
	for _, p := range trusted {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	if len(proxies) == 0 {
		cfg.ProxyHeader = ""
		cfg.EnableTrustedProxyCheck = false
		cfg.TrustedProxies = nil
		return
	}
	cfg.ProxyHeader = fiber.HeaderXForwardedFor
	cfg.EnableTrustedProxyCheck = true
	cfg.TrustedProxies = proxies
}
