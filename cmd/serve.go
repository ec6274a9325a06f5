package cmd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qupu/jianpu/constants"
	"github.com/qupu/jianpu/midifile"
	"github.com/qupu/jianpu/model"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetServeAddr(), "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves score conversion over HTTP",
	Long:  `Serves score conversion over HTTP`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(serveAddr)
	},
}

func serve(addr string) error {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/check", HandleCheck).Methods("POST")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")

	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, cors.Default().Handler(router))
}

func readScore(r *http.Request) (string, error) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading request body")
	}
	var input model.ConvertRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		return "", errors.Wrap(err, "decoding request body")
	}
	return input.Score, nil
}

func writeBadRequest(w http.ResponseWriter, id string, err error) {
	logger.Warn("request failed", zap.String("request_id", id), zap.Error(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

// HandleConvert compiles the posted score and answers with the .mid bytes.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set("X-Request-Id", id)

	text, err := readScore(r)
	if err != nil {
		writeBadRequest(w, id, err)
		return
	}
	tracks, doc, err := compileScore(text)
	if err != nil {
		writeBadRequest(w, id, err)
		return
	}
	if err := renderable(doc); err != nil {
		writeBadRequest(w, id, err)
		return
	}
	logWarnings(id, doc.Warnings)

	dat, err := midifile.Bytes(tracks)
	if err != nil {
		writeBadRequest(w, id, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Write(dat)
	logger.Info("rendered score",
		zap.String("request_id", id),
		zap.Int("tracks", len(tracks)),
		zap.Int("bytes", len(dat)))
}

// HandleCheck compiles the posted score and answers with a summary.
func HandleCheck(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set("X-Request-Id", id)

	text, err := readScore(r)
	if err != nil {
		writeBadRequest(w, id, err)
		return
	}
	tracks, doc, err := compileScore(text)
	if err != nil {
		writeBadRequest(w, id, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summarize(doc, tracks))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	io.WriteString(w, "ok")
}
