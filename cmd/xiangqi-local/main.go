package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 无图形界面时会失败，忽略
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "./web", "directory with index.html / js / svg")
	mobileDir := flag.String("web-mobile", "", "mobile page directory, defaults to -web")
	browser := flag.Bool("browser", true, "open the default browser on start")
	flag.Parse()

	srv := httpserver.NewServer(game.NewManager(), *webDir, *mobileDir)

	log.Printf("listening on %s, serving static from %s", *addr, *webDir)

	if *browser {
		// 等服务器起来再开浏览器
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}
