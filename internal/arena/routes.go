package arena

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"trainer/internal/battle"
)

func (a *Arena) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(a.logRequests)

	r.HandleFunc("/health", a.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/newChar", a.newCharHandler).Methods(http.MethodPost)
	r.HandleFunc("/selectChar", a.selectCharHandler).Methods(http.MethodGet)
	r.HandleFunc("/deleteChar/{char1}/{char2}", a.deleteCharHandler)
	r.HandleFunc("/turn/{char1}/{char2}/{move}", a.turnHandler).Methods(http.MethodGet)
	r.HandleFunc("/game/{char1}/{char2}", a.gameHandler).Methods(http.MethodGet)
	r.HandleFunc("/end/{char1}/{char2}", a.endHandler).Methods(http.MethodGet)
	return r
}

func (a *Arena) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		a.log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Dur("took", time.Since(start)).Msg("request")
	})
}

func jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func errorResponse(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUnknownFighter), errors.Is(err, ErrNoBattle):
		status = http.StatusNotFound
	case errors.Is(err, ErrEmptyName), errors.Is(err, battle.ErrUnknownClass), errors.Is(err, battle.ErrUnknownMove):
		status = http.StatusBadRequest
	}
	jsonResponse(w, map[string]string{"error": err.Error()}, status)
}

func (a *Arena) healthHandler(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{"status": "up"}, http.StatusOK)
}

func (a *Arena) newCharHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		jsonResponse(w, map[string]string{"error": err.Error()}, http.StatusBadRequest)
		return
	}
	if _, err := a.Register(r.Form.Get("name"), r.Form.Get("class")); err != nil {
		errorResponse(w, err)
		return
	}
	http.Redirect(w, r, "/selectChar", http.StatusFound)
}

func (a *Arena) selectCharHandler(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, a.Fighters(), http.StatusOK)
}

func (a *Arena) deleteCharHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	a.Delete(vars["char1"], vars["char2"])
	http.Redirect(w, r, "/selectChar", http.StatusFound)
}

func (a *Arena) turnHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	c1, c2 := vars["char1"], vars["char2"]
	move, err := battle.ParseMove(vars["move"])
	if err != nil {
		errorResponse(w, err)
		return
	}
	b, err := a.Turn(c1, c2, move)
	if err != nil {
		errorResponse(w, err)
		return
	}
	next := "/game/" + c1 + "/" + c2
	if b.Over {
		next = "/end/" + c1 + "/" + c2
	}
	http.Redirect(w, r, next, http.StatusFound)
}

func (a *Arena) gameHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	c1, c2 := vars["char1"], vars["char2"]
	if b, err := a.Battle(c1, c2); err == nil && b.Over {
		http.Redirect(w, r, "/end/"+c1+"/"+c2, http.StatusMovedPermanently)
		return
	}
	p1, p2, err := a.Status(c1, c2)
	if err != nil {
		errorResponse(w, err)
		return
	}
	jsonResponse(w, map[string]Fighter{"player": p1, "enemy": p2}, http.StatusOK)
}

func (a *Arena) endHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	b, err := a.Battle(vars["char1"], vars["char2"])
	if err != nil {
		errorResponse(w, err)
		return
	}
	jsonResponse(w, b, http.StatusOK)
}
