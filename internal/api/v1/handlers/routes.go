package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/auralabs/aura/internal/api/v1/middleware"
	"github.com/auralabs/aura/internal/services"
)

// RegisterRoutes wires the API surface onto the router
func RegisterRoutes(router *mux.Router, svcs *services.Services) {
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.CORS())

	// Auth routes (no session required)
	authRouter := api.PathPrefix("/auth").Subrouter()
	authRouter.Handle("/signup", middleware.RateLimit("auth")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleSignup(svcs.GetAuthService(), svcs.GetSessionService(), w, r)
	}))).Methods("POST", "OPTIONS")
	authRouter.Handle("/login", middleware.RateLimit("auth")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleLogin(svcs.GetAuthService(), svcs.GetSessionService(), w, r)
	}))).Methods("POST", "OPTIONS")
	authRouter.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		HandleLogout(svcs.GetSessionService(), w, r)
	}).Methods("GET", "OPTIONS")

	// User routes (session required)
	userRouter := api.PathPrefix("/user").Subrouter()
	userRouter.Use(middleware.RequireSession(svcs.GetSessionService()))
	userRouter.HandleFunc("/current", func(w http.ResponseWriter, r *http.Request) {
		HandleCurrentUser(svcs.GetUserRepository(), w, r)
	}).Methods("GET", "OPTIONS")
	userRouter.HandleFunc("/update", func(w http.ResponseWriter, r *http.Request) {
		HandleUpdateAssistant(svcs.GetUserRepository(), svcs.GetMediaService(), w, r)
	}).Methods("POST", "OPTIONS")
	userRouter.Handle("/asktoassistant", middleware.RateLimit("ask")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleAsk(svcs.GetAssistantService(), svcs.GetUserRepository(), w, r)
	}))).Methods("POST", "OPTIONS")

	// Browser voice loop
	router.HandleFunc("/widget.js", HandleVoiceLoopJS).Methods("GET")
}
