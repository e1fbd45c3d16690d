package server

// cSpell: words kubeconfig
// cSpell: disable
import (
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/evakhoni/jumpstarter-controller/pkg/k8s"
	"github.com/evakhoni/jumpstarter-controller/pkg/manifest"
	"github.com/evakhoni/jumpstarter-controller/pkg/utils"
)

// cSpell: enable

func (s *Server) renderPage(w http.ResponseWriter, messages []message) {
	data := page{
		Messages:        messages,
		CurrentHostname: s.Hostnames.Current(),
		SuggestedDomain: s.Suggest(),
		RootPassword:    s.Config.RootPassword,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.WithError(err).Error("Cannot render page")
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, nil)
}

func (s *Server) handleConfigureHostname(w http.ResponseWriter, r *http.Request) {
	hostname := strings.TrimSpace(r.FormValue("hostname"))
	if hostname == "" {
		s.renderPage(w, []message{errorMessage("Hostname cannot be empty")})
		return
	}

	if err := s.Hostnames.Set(hostname); err != nil {
		s.renderPage(w, []message{errorMessage("Failed to update hostname: " + err.Error())})
		return
	}
	s.renderPage(w, []message{successMessage("Hostname successfully updated to: " + hostname)})
}

// handleConfigureJumpstarter runs the configuration steps in strict sequence
// with no rollback. Every failing step produces its own error banner; a
// fully successful run reports a single consolidated message.
func (s *Server) handleConfigureJumpstarter(w http.ResponseWriter, r *http.Request) {
	baseDomain := strings.TrimSpace(r.FormValue("baseDomain"))
	imageVersion := strings.TrimSpace(r.FormValue("imageVersion"))
	rootPassword := r.FormValue("rootPassword")

	if baseDomain == "" {
		s.renderPage(w, []message{errorMessage("Base domain is required")})
		return
	}
	if s.Config.RootPassword {
		if rootPassword == "" {
			s.renderPage(w, []message{errorMessage("Root password is required")})
			return
		}
		if len(rootPassword) < 8 {
			s.renderPage(w, []message{errorMessage("Root password must be at least 8 characters")})
			return
		}
	}

	var messages []message

	if s.Config.RootPassword {
		if err := s.Passwords.SetRootPassword(rootPassword); err != nil {
			messages = append(messages, errorMessage("Failed to set root password: "+err.Error()))
		}
		if err := s.Hostnames.Set(baseDomain); err != nil {
			messages = append(messages, errorMessage("Failed to update hostname: "+err.Error()))
		}
	}

	document := manifest.Jumpstarter(baseDomain, imageVersion)
	if _, err := s.Cluster.Apply(manifest.Encode(document, 0)); err != nil {
		messages = append(messages, errorMessage("Failed to apply Jumpstarter CR: "+err.Error()))
	}

	if len(messages) == 0 {
		text := "Jumpstarter CR applied successfully with baseDomain: " + baseDomain
		if imageVersion != "" {
			text += ", imageVersion: " + imageVersion
		}
		messages = []message{successMessage(text)}
	}
	s.renderPage(w, messages)
}

func (s *Server) handleKubeconfig(w http.ResponseWriter, r *http.Request) {
	path := s.Config.KubeconfigPath

	exists, err := utils.FS.Exists(path)
	if err == nil && !exists {
		http.Error(w, "Kubeconfig file not found", http.StatusNotFound)
		return
	}

	content, err := utils.FS.ReadFile(path)
	if err != nil {
		http.Error(w, "Error reading kubeconfig: "+err.Error(), http.StatusInternalServerError)
		return
	}

	rewritten := k8s.RewriteKubeconfig(string(content), s.Hostnames.Current())

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="kubeconfig"`)
	w.Header().Set("Content-Length", fmt.Sprint(len(rewritten)))
	if _, err := w.Write([]byte(rewritten)); err != nil {
		log.WithError(err).Warn("Cannot write kubeconfig response")
	}
}
