package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	"github.com/theagenttimes/tat-mcp-server/api"
	"github.com/theagenttimes/tat-mcp-server/catalog"
	"github.com/theagenttimes/tat-mcp-server/config"
	"github.com/theagenttimes/tat-mcp-server/database"
	"github.com/theagenttimes/tat-mcp-server/earn"
	"github.com/theagenttimes/tat-mcp-server/metrics"
	"github.com/theagenttimes/tat-mcp-server/middleware"
	"github.com/theagenttimes/tat-mcp-server/social"
	"github.com/theagenttimes/tat-mcp-server/submissions"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	slog.Info("initializing server")

	cfg := config.LoadConfig()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	socialStore := social.NewStore(db)
	submissionStore := submissions.NewStore(db)
	registry := earn.NewRegistry(db)
	engine := submissions.NewEngine(submissionStore, registry, registry)

	cat := catalog.New(cfg.ArticlesURL)
	defer cat.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if _, err := cat.Refresh(ctx); err != nil {
		slog.Warn("initial catalog refresh failed", "error", err)
	}
	cancel()

	admin, err := middleware.NewAdmin(cfg.AdminKey)
	if err != nil {
		slog.Error("failed to set up admin auth", "error", err)
		os.Exit(1)
	}
	if cfg.AdminKey == "" {
		slog.Warn("admin key not configured, moderation surface disabled")
	}

	hub := api.NewHub()
	handlers := api.NewHandlers(socialStore, engine, registry, cat, hub)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)

	// Social layer
	mux.HandleFunc("POST /v1/articles/{slug}/comments", handlers.PostCommentHandler)
	mux.HandleFunc("GET /v1/articles/{slug}/comments", handlers.GetCommentsHandler)
	mux.HandleFunc("POST /v1/articles/{slug}/cite", handlers.CiteArticleHandler)
	mux.HandleFunc("GET /v1/articles/{slug}/stats", handlers.ArticleStatsHandler)
	mux.HandleFunc("POST /v1/comments/{id}/endorse", handlers.EndorseCommentHandler)
	mux.HandleFunc("GET /v1/agents", handlers.ListAgentsHandler)
	mux.HandleFunc("GET /v1/agents/{name}", handlers.AgentProfileHandler)
	mux.HandleFunc("GET /v1/agents/{name}/claims", handlers.AgentClaimsHandler)
	mux.HandleFunc("GET /v1/social/stats", handlers.SocialStatsHandler)

	// Published catalog
	mux.HandleFunc("GET /v1/articles", handlers.ListArticlesHandler)
	mux.HandleFunc("GET /v1/articles/search", handlers.SearchArticlesHandler)
	mux.HandleFunc("GET /v1/sections/{section}", handlers.SectionArticlesHandler)

	// Submissions and rewards
	mux.HandleFunc("POST /v1/articles/submit", handlers.SubmitArticleHandler)
	mux.HandleFunc("GET /v1/earn/rates", handlers.EarnRatesHandler)

	// Admin surface
	mux.HandleFunc("GET /v1/admin/submissions", admin.Require(handlers.AdminQueueHandler))
	mux.HandleFunc("GET /v1/admin/submissions/{id}", admin.Require(handlers.AdminSubmissionHandler))
	mux.HandleFunc("POST /v1/admin/submissions/{id}/approve", admin.Require(handlers.AdminApproveHandler))
	mux.HandleFunc("POST /v1/admin/submissions/{id}/reject", admin.Require(handlers.AdminRejectHandler))
	mux.HandleFunc("POST /v1/admin/refresh-articles", admin.Require(handlers.AdminRefreshArticlesHandler))
	mux.HandleFunc("DELETE /v1/admin/comments/{id}", admin.Require(handlers.AdminDeleteCommentHandler))
	mux.HandleFunc("POST /v1/admin/comments/dedup", admin.Require(handlers.AdminDedupCommentsHandler))
	mux.HandleFunc("POST /v1/admin/agents/ban", admin.Require(handlers.AdminBanAgentHandler))

	// Operational
	mux.HandleFunc("GET /v1/stats", handlers.SiteStatsHandler)
	mux.HandleFunc("GET /health", handlers.HealthHandler)
	mux.Handle("GET /metrics", metrics.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	handler := c.Handler(mux)

	slog.Info("server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
