/*
Copyright © 2025 The Jumpstarter Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package server exposes the configuration UI over HTTP. All side effects go
// through the collaborator interfaces of pkg/host and pkg/k8s so the handler
// logic can be exercised against fakes.
package server

// cSpell: disable
import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/txn2/txeh"

	"github.com/evakhoni/jumpstarter-controller/pkg/config"
	"github.com/evakhoni/jumpstarter-controller/pkg/host"
	"github.com/evakhoni/jumpstarter-controller/pkg/k8s"
)

// cSpell: enable

const shutdownTimeout = 5 * time.Second

// Server handles the configuration UI requests.
type Server struct {
	Config    *config.ServiceConfig
	Hostnames host.HostnameStore
	Passwords host.PasswordStore
	Cluster   k8s.Applier
	Checker   host.CredentialChecker
	// Suggest produces the default domain suggestion shown on the page.
	Suggest func() string

	router *mux.Router
}

// New builds a Server wired to the real system collaborators. Tests replace
// individual collaborators after construction.
func New(cfg *config.ServiceConfig) *Server {
	hostnames := &host.SystemHostname{}
	if cfg.HostsFile != "" {
		hostnames.HostsConfig = &txeh.HostsConfig{
			ReadFilePath:  cfg.HostsFile,
			WriteFilePath: cfg.HostsFile,
		}
	}

	s := &Server{
		Config:    cfg,
		Hostnames: hostnames,
		Passwords: &host.ChpasswdStore{},
		Cluster:   &k8s.KubectlApplier{},
		Checker:   &host.UnixChecker{},
		Suggest:   host.SuggestedDomain,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	router := mux.NewRouter()
	router.Use(s.logRequests)
	if s.Config.Auth {
		router.Use(s.authenticate)
	}

	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/kubeconfig", s.handleKubeconfig).Methods(http.MethodGet)
	router.HandleFunc("/configure-hostname", s.handleConfigureHostname).Methods(http.MethodPost)
	router.HandleFunc("/configure-jumpstarter", s.handleConfigureJumpstarter).Methods(http.MethodPost)

	s.router = router
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then stops accepting connections and
// drains in-flight requests before returning.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.Config.Port))
	if err != nil {
		return err
	}
	return s.serve(ctx, listener)
}

func (s *Server) serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler: s,
	}

	shutdown := make(chan error, 1)
	go func() {
		<-ctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdown <- httpServer.Shutdown(shutdownCtx)
	}()

	log.WithField("port", s.Config.Port).Infof("Starting Jumpstarter Configuration UI on port %d", s.Config.Port)
	if err := httpServer.Serve(listener); err != http.ErrServerClosed {
		return err
	}

	// Serve returns as soon as Shutdown is called; wait until in-flight
	// requests have drained.
	if err := <-shutdown; err != nil {
		log.WithError(err).Warn("Shutdown did not complete cleanly")
	}
	return nil
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		log.WithFields(log.Fields{
			"request": uuid.NewString(),
			"method":  r.Method,
			"path":    r.URL.Path,
			"status":  recorder.status,
		}).Infof("%s %s %d (%s)", r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || !s.Checker.Check(username, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="jumpstarter"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
