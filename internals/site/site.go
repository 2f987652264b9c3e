// Package site serves the public pages, shared components and assets of the
// church website from SITE_ROOT, versioning local asset URLs in HTML.
package site

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const assetMaxAge = 365 * 24 * 60 * 60

type Options struct {
	Root         string
	AssetVersion string
	Production   bool
}

type Site struct {
	opts Options
}

func New(opts Options) *Site {
	if opts.Root == "" {
		opts.Root = "web"
	}
	return &Site{opts: opts}
}

// Register mounts the site on app. Call after the API routes; the final
// handler answers every unmatched path with a JSON 404.
func (s *Site) Register(app *fiber.App) {
	app.Get("/assets/js/config.js", s.configJS)

	assetAge := assetMaxAge
	if !s.opts.Production {
		assetAge = 0
	}
	app.Static("/assets", filepath.Join(s.opts.Root, "assets"), fiber.Static{
		Compress:  true,
		ByteRange: true,
		MaxAge:    assetAge,
	})
	app.Static("/components", filepath.Join(s.opts.Root, "components"), fiber.Static{
		Compress: true,
	})

	app.Get("/", s.index)
	app.Get("/index.html", s.index)
	app.Get("/pages/:page", s.page)

	app.Use(NotFound)
}

func (s *Site) configJS(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "application/javascript; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(ConfigScript(s.opts.AssetVersion))
}

func (s *Site) index(c *fiber.Ctx) error {
	return s.sendHTML(c, filepath.Join(s.opts.Root, "index.html"))
}

// GET /pages/:page; "about" and "about.html" both resolve to pages/about.html.
func (s *Site) page(c *fiber.Ctx) error {
	name, ok := ResolvePage(c.Params("page"))
	if !ok {
		return NotFound(c)
	}
	return s.sendHTML(c, filepath.Join(s.opts.Root, "pages", name))
}

// ResolvePage maps a route segment to a file name under pages/, rejecting traversal.
func ResolvePage(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", false
	}
	if filepath.Ext(name) == "" {
		name += ".html"
	}
	if filepath.Ext(name) != ".html" {
		return "", false
	}
	return name, true
}

func (s *Site) sendHTML(c *fiber.Ctx, path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NotFound(c)
		}
		log.Printf("[ERROR] read %s: %v", path, err)
		return fiber.ErrInternalServerError
	}

	out, err := RewriteAssetURLs(doc, s.opts.AssetVersion)
	if err != nil {
		log.Printf("[WARN] rewrite %s: %v", path, err)
		out = doc
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(out)
}

// NotFound is the catch-all JSON 404.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "Not Found",
		"message": "The requested resource " + c.Path() + " was not found",
	})
}
