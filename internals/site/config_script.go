package site

import (
	"fmt"
	"strconv"
)

// ConfigScript is the body of /assets/js/config.js.
func ConfigScript(version string) []byte {
	v := strconv.Quote(version)
	return []byte(fmt.Sprintf(`// Generated at startup from ASSET_VERSION.
window.APP_CONFIG = window.APP_CONFIG || {};
window.APP_CONFIG.ASSET_VERSION = %s;
window.ASSET_VERSION = %s;
`, v, v))
}
