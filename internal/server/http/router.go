package httpserver

import (
	"net/http"

	"xiangqi/internal/server/game"
)

// Server 把 /api/ 和静态页面挂到同一个 mux 上
type Server struct {
	mux *http.ServeMux
	api *Handler
}

// NewServer 的 mobileDir 为空时和 webDir 共用一套页面
func NewServer(games *game.Manager, webDir, mobileDir string) *Server {
	s := &Server{mux: http.NewServeMux(), api: NewHandler(games)}
	s.mux.Handle("/api/", s.api)
	RegisterStaticRoutes(s.mux, webDir, mobileDir)
	return s
}

func (s *Server) Games() *game.Manager { return s.api.Games() }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
