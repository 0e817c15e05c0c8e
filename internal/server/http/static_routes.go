package httpserver

import (
	"net/http"
	"strings"
)

const viewCookieName = "xiangqi_view"

// 页面入口：桌面版和手机版
var viewPrefixes = map[string]string{
	"web":    "/web/",
	"mobile": "/web_mobile/",
}

// RegisterStaticRoutes 挂两套页面；/ 依次按 ?view、cookie、UA 选一套跳转
func RegisterStaticRoutes(mux *http.ServeMux, webDir, mobileDir string) {
	if webDir == "" {
		webDir = "."
	}
	if mobileDir == "" {
		mobileDir = webDir
	}
	dirs := map[string]string{"web": webDir, "mobile": mobileDir}
	for view, prefix := range viewPrefixes {
		mux.Handle(prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(dirs[view]))))
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		view := pickView(r)
		if r.URL.Query().Get("view") == view {
			http.SetCookie(w, &http.Cookie{Name: viewCookieName, Value: view, Path: "/", MaxAge: 30 * 24 * 3600})
		}
		w.Header().Set("Vary", "User-Agent, Cookie")
		http.Redirect(w, r, viewPrefixes[view], http.StatusFound)
	})
}

func pickView(r *http.Request) string {
	if v := r.URL.Query().Get("view"); viewPrefixes[v] != "" {
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil && viewPrefixes[c.Value] != "" {
		return c.Value
	}
	// 手机浏览器的 UA 基本都带 Mobi 或 Android
	ua := strings.ToLower(r.UserAgent())
	if strings.Contains(ua, "mobi") || strings.Contains(ua, "android") {
		return "mobile"
	}
	return "web"
}
