package mobile

import (
	"log"
	"net/http"

	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

// StartServer 在后台起本地 HTTP 服务，给安卓/iOS 壳子里的 WebView 用。
// webDir 是解压后的页面目录，port 例如 "2888"。
func StartServer(webDir string, port string) {
	srv := httpserver.NewServer(game.NewManager(), webDir, webDir)

	// 不能阻塞 UI 线程
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, srv); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
