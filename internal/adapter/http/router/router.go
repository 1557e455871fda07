package router

import "net/http"

type UserRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, internalKey, userAuth func(http.Handler) http.Handler)
}

type MovementRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, internalKey func(http.Handler) http.Handler)
}

type InvestmentRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

func New(
	userController UserRouteRegistrar,
	movementController MovementRouteRegistrar,
	investmentController InvestmentRouteRegistrar,
	internalKey func(http.Handler) http.Handler,
	userAuth func(http.Handler) http.Handler,
	metricsHandler http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	if userController != nil {
		userController.RegisterRoutes(mux, internalKey, userAuth)
	}
	if movementController != nil {
		movementController.RegisterRoutes(mux, internalKey)
	}
	if investmentController != nil {
		investmentController.RegisterRoutes(mux)
	}

	return mux
}
