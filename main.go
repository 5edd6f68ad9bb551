package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	auth "github.com/tucommenceapousser/coil-making/internal/auth"
	builds "github.com/tucommenceapousser/coil-making/internal/builds"
	batch "github.com/tucommenceapousser/coil-making/internal/calc/batch"
	coil "github.com/tucommenceapousser/coil-making/internal/calc/coil"
	export "github.com/tucommenceapousser/coil-making/internal/calc/export"
	importer "github.com/tucommenceapousser/coil-making/internal/calc/importer"
	power "github.com/tucommenceapousser/coil-making/internal/calc/power"
	recommend "github.com/tucommenceapousser/coil-making/internal/calc/recommend"
	report "github.com/tucommenceapousser/coil-making/internal/calc/report"
	wraps "github.com/tucommenceapousser/coil-making/internal/calc/wraps"
	material "github.com/tucommenceapousser/coil-making/internal/material"
	profile "github.com/tucommenceapousser/coil-making/internal/profile"
	repo "github.com/tucommenceapousser/coil-making/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}
	buildsH := &builds.Handler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	// Reference tables are public; the tools sit behind auth.
	api.HandleFunc("/materials", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(material.All())
	}).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")

	coilH := &coil.Handler{}
	wrapsH := &wraps.Handler{}
	powerH := &power.Handler{}
	exportH := &export.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}

	secureApi.HandleFunc("/tools/coil/calc", coilH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/wraps/calc", wrapsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/power/calc", powerH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/recommend/gauge", recommendH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/coil/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/coil/import", importerH.Coil).Methods("POST")
	secureApi.HandleFunc("/tools/profile/export", exportH.Download).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/builds", buildsH.Save).Methods("POST")
	secureApi.HandleFunc("/builds", buildsH.List).Methods("GET")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
