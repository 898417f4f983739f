// Package qc serves quote rendering over HTTP.
package qc

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/ankurkotwal/quotecard/qc/common"
	"github.com/ankurkotwal/quotecard/qc/fonts"
	"github.com/ankurkotwal/quotecard/qc/render"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// QuoteRequest is the body of a render request, as a form or JSON
type QuoteRequest struct {
	Quote  string  `form:"quote" json:"quote" binding:"required"`
	Author *string `form:"author" json:"author"`
}

// Response headers describing the render
const (
	HeaderOverflow = "X-Quote-Overflow"
	HeaderFontSize = "X-Quote-Font-Size"
)

// GetServer returns a router serving quote renders using config, and the
// address to listen on.
func GetServer(debugMode bool, config *common.Config) (*gin.Engine, string, error) {
	params, err := render.ParamsFromConfig(config)
	if err != nil {
		return nil, "", err
	}

	if !debugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	if debugMode {
		pprof.Register(router)
	}
	if config.DebugOutput {
		common.NewLog().Dbg("%s", common.YamlObjectAsString(config, "Config"))
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"Title":   config.AppName,
			"Version": config.Version,
		})
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.POST("/api/quote", func(c *gin.Context) {
		handleQuote(c, params, config.FallbackFonts)
	})

	// Run on port 8080 unless PORT variable specified
	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "8080"
	}
	return router, fmt.Sprintf(":%s", port), nil
}

func handleQuote(c *gin.Context, params render.Params, fallbacks []string) {
	log := common.NewLog()

	var req QuoteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Author != nil {
		params.AuthorText = *req.Author
	}

	// Faces aren't safe for concurrent use so each request gets its own cache
	resolver := fonts.NewResolver(log, fallbacks...)
	img, result, err := render.RenderImage(req.Quote, params, resolver, log)
	if err != nil {
		status := http.StatusInternalServerError
		var verr *render.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error(), "logs": log.Entries})
		return
	}

	var buf bytes.Buffer
	if err := render.EncodeTo(&buf, img, params.Format, params.JpgQuality); err != nil {
		log.Err("encode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "logs": log.Entries})
		return
	}
	c.Header(HeaderOverflow, strconv.FormatBool(result.Wrap.Overflow))
	c.Header(HeaderFontSize, strconv.Itoa(result.Wrap.FontSize))
	c.Data(http.StatusOK, render.ContentType(params.Format), buf.Bytes())
}
