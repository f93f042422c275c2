package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/smontiel/thesis-workflow/internal/api/handlers/notification"
	"github.com/smontiel/thesis-workflow/internal/api/handlers/project"
	"github.com/smontiel/thesis-workflow/internal/api/handlers/review"
	"github.com/smontiel/thesis-workflow/internal/middlewares"
)

func New(projects *project.Handler, reviews *review.Handler, notifications *notification.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(middlewares.CorrelationID())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		p := api.Group("/projects")
		{
			p.POST("/", projects.Create)
			p.GET("/:id", projects.Get)
			p.GET("/:id/state", projects.GetState)
			p.POST("/:id/documents", projects.SubmitDocument)
			p.POST("/:id/review", projects.Review)
			p.POST("/:id/advance", projects.Advance)
			p.PATCH("/:id/state", projects.SetState)
		}

		r := api.Group("/reviews")
		{
			r.GET("/:unitId", reviews.Get)
			r.POST("/:unitId/assign", reviews.Assign)
			r.POST("/:unitId/decisions", reviews.Decide)
		}

		n := api.Group("/notifications")
		{
			n.GET("/:correlationId", notifications.GetStatus)
		}
	}

	return e
}
