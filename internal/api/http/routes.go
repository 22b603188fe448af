package httpapi

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/i474232898/temperature-heatmap/internal/common"
	"github.com/i474232898/temperature-heatmap/internal/heatmap"
	"github.com/i474232898/temperature-heatmap/internal/logger"
	"github.com/i474232898/temperature-heatmap/internal/render"
	"github.com/i474232898/temperature-heatmap/internal/store"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *heatmap.Service) {
	app.Get("/", func(c *fiber.Ctx) error {
		// Without a snapshot the page stays blank below the container.
		var chart *heatmap.Chart
		if snapshot, err := service.Latest(); err == nil {
			chart = &snapshot.Chart
		}
		return sendPage(c, chart)
	})

	app.Get("/heatmap", func(c *fiber.Ctx) error {
		accept := c.Get(fiber.HeaderAccept)
		switch {
		case common.HasAny(accept, "image/png"):
			return sendPNG(c, service)
		case common.HasAny(accept, "image/svg+xml"):
			return sendSVG(c, service)
		default:
			return c.Redirect("/", fiber.StatusSeeOther)
		}
	})
	app.Get("/heatmap.svg", func(c *fiber.Ctx) error { return sendSVG(c, service) })
	app.Get("/heatmap.png", func(c *fiber.Ctx) error { return sendPNG(c, service) })

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")

	v1.Get("/dataset", func(c *fiber.Ctx) error {
		snapshot, err := service.Latest()
		if err != nil {
			return snapshotError(err)
		}
		return c.JSON(snapshot.Dataset)
	})

	v1.Get("/chart", func(c *fiber.Ctx) error {
		snapshot, err := service.Latest()
		if err != nil {
			return snapshotError(err)
		}
		return c.JSON(snapshot.Chart)
	})

	v1.Get("/legend", func(c *fiber.Ctx) error {
		snapshot, err := service.Latest()
		if err != nil {
			return snapshotError(err)
		}
		return c.JSON(snapshot.Chart.Legend)
	})

	v1.Get("/tooltip", func(c *fiber.Ctx) error {
		var req tooltipQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		handle, err := service.Tooltip(req.Year, req.Month, heatmap.Pointer{PageX: req.X, PageY: req.Y})
		if err != nil {
			if errors.Is(err, heatmap.ErrCellNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return snapshotError(err)
		}

		return c.JSON(fiber.Map{
			"state":    handle.State,
			"display":  handle.State.Display(),
			"left":     handle.Left,
			"top":      handle.Top,
			"dataYear": handle.DataYear,
			"lines":    handle.Lines,
			"html":     handle.HTML(),
		})
	})

	v1.Get("/snapshots", func(c *fiber.Ctx) error {
		history := service.History()
		items := make([]heatmap.Snapshot, 0, len(history))
		for i := len(history) - 1; i >= 0; i-- {
			items = append(items, history[i])
		}
		return c.JSON(fiber.Map{"snapshots": items})
	})

	v1.Get("/snapshots/:id", func(c *fiber.Ctx) error {
		snapshot, err := service.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no snapshot with that id")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load snapshot")
		}
		return c.JSON(fiber.Map{
			"snapshot": snapshot,
			"chart":    snapshot.Chart,
		})
	})

	v1.Post("/refresh", func(c *fiber.Ctx) error {
		snapshot, err := service.Refresh(c.UserContext())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "dataset refresh failed")
		}
		return c.Status(fiber.StatusCreated).JSON(snapshot)
	})
}

func snapshotError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusServiceUnavailable, "heat map not available yet")
	}
	logger.Errorf("api: loading snapshot: %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, "failed to load heat map")
}

func sendPage(c *fiber.Ctx, chart *heatmap.Chart) error {
	var buf bytes.Buffer
	if err := render.Page(&buf, chart, ""); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func sendSVG(c *fiber.Ctx, service *heatmap.Service) error {
	snapshot, err := service.Latest()
	if err != nil {
		return snapshotError(err)
	}
	var buf bytes.Buffer
	if err := render.SVG(&buf, snapshot.Chart); err != nil {
		return err
	}
	c.Type("svg")
	return c.Send(buf.Bytes())
}

func sendPNG(c *fiber.Ctx, service *heatmap.Service) error {
	snapshot, err := service.Latest()
	if err != nil {
		return snapshotError(err)
	}
	var buf bytes.Buffer
	if err := render.PNG(&buf, snapshot.Dataset, snapshot.Chart.Layout); err != nil {
		return err
	}
	c.Type("png")
	return c.Send(buf.Bytes())
}

// tooltipQuery holds query parameters for the tooltip endpoint.
type tooltipQuery struct {
	Year  int `validate:"required"`
	Month int `validate:"min=1,max=12"`
	X     float64
	Y     float64
}

func (q *tooltipQuery) bind(c *fiber.Ctx) error {
	var err error
	if q.Year, err = queryInt(c, "year"); err != nil {
		return err
	}
	if q.Month, err = queryInt(c, "month"); err != nil {
		return err
	}
	if q.X, err = queryFloat(c, "x"); err != nil {
		return err
	}
	if q.Y, err = queryFloat(c, "y"); err != nil {
		return err
	}
	return nil
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	s := c.Query(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid " + key + "; must be an integer")
	}
	return n, nil
}

func queryFloat(c *fiber.Ctx, key string) (float64, error) {
	s := c.Query(key)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("invalid " + key + "; must be a number")
	}
	return f, nil
}
