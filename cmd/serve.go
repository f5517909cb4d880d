package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gearbox-works/scout-cli/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demo scouting API server",
	Long:  "Serves team summaries and alliance recommendations over HTTP. Demonstration scaffolding around the same aggregation the CLI uses; the store stays the single source of truth.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/api/teams", func(w http.ResponseWriter, req *http.Request) {
			matches, pits, err := loadSnapshot(req.Context(), st)
			if err != nil {
				serverError(w, "list teams", err)
				return
			}
			summaries := newAggregator().SummarizeAll(matches, pits)
			if summaries == nil {
				summaries = []model.TeamSummary{}
			}
			writeJSON(w, http.StatusOK, summaries)
		})

		r.Post("/api/teams", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				TeamNumber int    `json:"team_number"`
				TeamName   string `json:"team_name"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}
			if body.TeamNumber < 1 {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "team_number is required"})
				return
			}
			if body.TeamName == "" {
				body.TeamName = model.SynthesizedName(body.TeamNumber)
			}

			rec := placeholderPit(body.TeamNumber, body.TeamName)
			if err := rec.Validate(); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			if _, err := st.AddPit(req.Context(), rec); err != nil {
				serverError(w, "create team", err)
				return
			}

			matches, pits, err := loadSnapshot(req.Context(), st)
			if err != nil {
				serverError(w, "create team", err)
				return
			}
			summary := newAggregator().Summarize(body.TeamNumber, matches, pits)
			writeJSON(w, http.StatusCreated, summary)
		})

		r.Get("/api/alliances", func(w http.ResponseWriter, req *http.Request) {
			matches, pits, err := loadSnapshot(req.Context(), st)
			if err != nil {
				serverError(w, "alliances", err)
				return
			}
			summaries := newAggregator().SummarizeAll(matches, pits)
			rec := newRecommender()
			candidates := rec.Recommend(summaries)

			if len(candidates) == 0 {
				writeJSON(w, http.StatusOK, map[string]any{
					"candidates":    []model.AllianceCandidate{},
					"insufficient":  true,
					"teams_scouted": len(summaries),
					"teams_needed":  rec.MinTeams(),
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"candidates": candidates})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// placeholderPit makes a minimal valid pit record for a team created over
// the API before any scouting happened.
func placeholderPit(teamNumber int, name string) model.PitRecord {
	return model.PitRecord{
		TeamNumber: teamNumber,
		TeamName:   name,
		Drivetrain: model.DrivetrainOther,
		Capabilities: model.CapabilitySet{
			MaxAscent: model.AscentNone,
		},
		Ratings:       model.Ratings{Speed: 3, Reliability: 3, Maneuverability: 3},
		PreferredRole: model.RoleHybrid,
		PreferredZone: model.ZoneMixed,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func serverError(w http.ResponseWriter, action string, err error) {
	zap.L().Error("request failed", zap.String("action", action), zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
