package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carlosjramirezg1979/InProject/handlers"
	"github.com/carlosjramirezg1979/InProject/logging"
	"github.com/carlosjramirezg1979/InProject/middleware"
	"github.com/carlosjramirezg1979/InProject/repositories"
	"github.com/carlosjramirezg1979/InProject/services"
)

func main() {
	logging.InitLogger()
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting InProject backend...")

	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	mongoDBName := os.Getenv("MONGO_DB_NAME")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	if mongoDBName == "" {
		mongoDBName = "inproject"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection failed: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	repo := repositories.NewMongoRepository(client, mongoDBName)
	if err := repo.EnsureIndexes(ctx); err != nil {
		logging.Logger.Fatalf("Event ID: DB_INDEX_FAILED, Description: %v", err)
	}

	riskBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "RiskGatewayCB",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})

	httpClient := &http.Client{Timeout: 30 * time.Second}

	userService := services.NewUserService(repo)
	projectService := services.NewProjectService(repo)
	companyService := services.NewCompanyService(repo)
	stakeholderService := services.NewStakeholderService(repo)
	riskService := services.NewRiskService(os.Getenv("RISK_GATEWAY_URL"), httpClient, riskBreaker)

	authHandler := handlers.NewAuthHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	stakeholderHandler := handlers.NewStakeholderHandler(stakeholderService)
	riskHandler := handlers.NewRiskHandler(riskService)

	r := mux.NewRouter()

	r.HandleFunc("/api/auth/signup", authHandler.SignUp).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/signin", authHandler.SignIn).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/forgot-password", authHandler.ForgotPassword).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.JWTAuthMiddleware)

	api.HandleFunc("/profile", authHandler.GetProfile).Methods(http.MethodGet)
	api.HandleFunc("/profile", authHandler.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/profile/change-password", authHandler.ChangePassword).Methods(http.MethodPost)

	api.HandleFunc("/projects", projectHandler.CreateProject).Methods(http.MethodPost)
	api.HandleFunc("/projects", projectHandler.ListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", projectHandler.GetProjectByID).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", projectHandler.UpdateCharter).Methods(http.MethodPut)
	api.HandleFunc("/projects/{id}/status", projectHandler.GetProjectStatus).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}/phases/{phase}/complete", projectHandler.CompletePhase).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/phases/{phase}/unlock", projectHandler.UnlockPhase).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/phases/{phase}/start", projectHandler.StartPhase).Methods(http.MethodPost)

	api.HandleFunc("/projects/{id}/company", companyHandler.RegisterCompany).Methods(http.MethodPost)
	api.HandleFunc("/companies", companyHandler.ListCompanies).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id}", companyHandler.GetCompanyByID).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id}/projects", companyHandler.ListCompanyProjects).Methods(http.MethodGet)

	api.HandleFunc("/projects/{id}/stakeholders", stakeholderHandler.AddStakeholder).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/stakeholders", stakeholderHandler.ListStakeholders).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}/stakeholders/{stakeholderId}", stakeholderHandler.DeleteStakeholder).Methods(http.MethodDelete)

	api.HandleFunc("/risks/suggest", riskHandler.SuggestRisks).Methods(http.MethodPost)

	corsRouter := enableCORS(r)

	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = ":8080"
	}

	srv := &http.Server{
		Addr:         address,
		Handler:      corsRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logging.Logger.Infof("Event ID: SERVER_LISTENING, Description: InProject backend running on %s", address)
	logging.Logger.Fatal(srv.ListenAndServe())
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := os.Getenv("CORS_ORIGIN")
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
