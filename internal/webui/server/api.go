package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"uvctl/internal/catalog"
	"uvctl/internal/reconcile"
	appver "uvctl/internal/version"
)

type versionBody struct {
	Version string `json:"version"`
}

func (s *Server) mountAPI(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	api.GET("/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Reconciler.Snapshot())
	})
	api.GET("/history", func(c *gin.Context) {
		items := s.History.Items()
		if items == nil {
			items = []string{}
		}
		c.JSON(http.StatusOK, items)
	})

	// tool
	api.POST("/tool/check", s.op(catalog.CheckTool, false))
	api.POST("/tool/install", s.op(catalog.InstallTool, false))

	// python
	api.GET("/python/available", s.op(catalog.ListAvailable, false))
	api.POST("/python/refresh", s.op(catalog.ListInstalled, false))
	api.POST("/python/install", s.op(catalog.InstallVersion, true))
	api.POST("/python/uninstall", s.op(catalog.UninstallVersion, true))
	api.POST("/python/find", s.op(catalog.FindVersion, true))
	api.POST("/python/pin", s.op(catalog.PinVersion, true))
}

// op returns a handler running one operation of kind. The request context
// reaches the process, so a disconnecting client cancels it.
func (s *Server) op(kind catalog.Kind, withVersion bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body versionBody
		if withVersion {
			if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
				c.JSON(http.StatusBadRequest, errJSON(err))
				return
			}
		}
		out, err := s.Reconciler.Do(c.Request.Context(), catalog.NewOperation(kind, body.Version))
		switch {
		case errors.Is(err, reconcile.ErrBusy):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "state": out.Snapshot})
			return
		case errors.Is(err, catalog.ErrVersionRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "state": out.Snapshot})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, errJSON(err))
			return
		}
		if !out.Result.Success {
			s.logger().Warn("operation failed", "kind", kind, "failure", out.Result.Failure)
			c.JSON(http.StatusBadGateway, out)
			return
		}
		s.remember(kind, out.Operation.Version)
		c.JSON(http.StatusOK, out)
	}
}

// remember records versions that were installed, found or pinned, and
// forgets uninstalled ones.
func (s *Server) remember(kind catalog.Kind, version string) {
	if strings.TrimSpace(version) == "" {
		return
	}
	var err error
	switch kind {
	case catalog.InstallVersion, catalog.FindVersion, catalog.PinVersion:
		err = s.History.Add(version)
	case catalog.UninstallVersion:
		err = s.History.Remove(version)
	}
	if err != nil {
		s.logger().Warn("history not saved", "err", err)
	}
}

func errJSON(err error) map[string]string { return map[string]string{"error": err.Error()} }
