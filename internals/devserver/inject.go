package devserver

import (
	"bytes"
	"fmt"
)

const reloadScript = `<script>
(function () {
  console.log('🔄 Live reload enabled');
  var connect = function () {
    var ws = new WebSocket('ws://localhost:%d');
    ws.onmessage = function (msg) {
      if (msg.data === 'reload') {
        console.log('📡 Changes detected - reloading...');
        window.location.reload();
      }
    };
    ws.onclose = function () {
      console.log('🔌 Reconnecting...');
      setTimeout(connect, 1000);
    };
  };
  connect();
})();
</script>
</body>`

// InjectReload puts the live-reload client before the first </body>.
// Documents without </body> are returned unchanged.
func InjectReload(doc []byte, reloadPort int) []byte {
	idx := bytes.Index(doc, []byte("</body>"))
	if idx < 0 {
		return doc
	}
	script := fmt.Sprintf(reloadScript, reloadPort)

	out := make([]byte, 0, len(doc)+len(script))
	out = append(out, doc[:idx]...)
	out = append(out, script...)
	out = append(out, doc[idx+len("</body>"):]...)
	return out
}
