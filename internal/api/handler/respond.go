package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/authenticating"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
	"github.com/casaalves/backoffice-api/internal/usecases/reporting"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
	"github.com/casaalves/backoffice-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response é o envelope de todas as respostas JSON de sucesso
type Response struct {
	Data          any                   `json:"data"`
	Notifications []domain.Notification `json:"notifications"`
}

func notificationsOf(r *http.Request) []domain.Notification {
	if rec := notifying.FromContext(r.Context()); rec != nil {
		if n := rec.Notifications(); n != nil {
			return n
		}
	}
	return []domain.Notification{}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Response{Data: data, Notifications: notificationsOf(r)}); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeFailure traduz o erro para o código da API mantendo os toasts da requisição
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	status, apiErr := describeError(err)
	apiErr.Notifications = notificationsOf(r)

	logger := log.ForContext(r.Context()).WithError(err).WithField("status_code", status)
	if status >= http.StatusInternalServerError {
		logger.Error("Falha ao processar requisição")
	} else {
		logger.Warn("Requisição recusada")
	}

	apiErrors.Write(w, status, apiErr)
}

func describeError(err error) (int, apiErrors.APIError) {
	var (
		verr    *domain.ValidationError
		backend *casaalves.Error
		report  *reporting.ReportError
		auth    *authenticating.AuthError
	)

	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, apiErrors.APIError{
			Code:    apiErrors.ErrValidation,
			Message: domain.ErrValidation.Error(),
			Details: verr.Fields,
		}
	case errors.As(err, &backend):
		return backendStatus(backend)
	case errors.As(err, &report):
		return apiErrors.StatusOf(report.Code), apiErrors.APIError{
			Code:    report.Code,
			Message: report.Err.Error(),
			Details: report.Details,
		}
	case errors.As(err, &auth):
		return apiErrors.StatusOf(auth.Code), apiErrors.APIError{Code: auth.Code, Message: auth.Err.Error()}
	default:
		return http.StatusInternalServerError, apiErrors.FromError(err, apiErrors.ErrInternalServer)
	}
}

// backendStatus repassa os status 4xx do backend; falhas de transporte e 5xx viram erros do gateway
func backendStatus(err *casaalves.Error) (int, apiErrors.APIError) {
	apiErr := apiErrors.APIError{Message: err.ServerMessage()}

	switch {
	case err.Status == 0:
		apiErr.Code = apiErrors.ErrCommunication
		apiErr.Message = "Backend indisponível"
		return apiErrors.StatusOf(apiErr.Code), apiErr
	case err.Status == http.StatusUnauthorized:
		apiErr.Code = apiErrors.ErrInvalidToken
	case err.Status == http.StatusForbidden:
		apiErr.Code = apiErrors.ErrInsufficientPrivilege
	case err.Status == http.StatusNotFound:
		apiErr.Code = apiErrors.ErrNotFound
	case err.Status >= http.StatusInternalServerError:
		apiErr.Code = apiErrors.ErrBackendRejected
		return apiErrors.StatusOf(apiErr.Code), apiErr
	default:
		apiErr.Code = apiErrors.ErrBackendRejected
	}

	return err.Status, apiErr
}

// writeState responde a listagem. Uma busca superada por outra mais nova do
// mesmo usuário devolve 409 com o estado atual; uma busca que falhou devolve
// 502 com o estado reiniciado.
func writeState(w http.ResponseWriter, r *http.Request, state any, failed string, superseded bool) {
	if superseded {
		apiErrors.Write(w, http.StatusConflict, apiErrors.APIError{
			Code:          apiErrors.ErrSuperseded,
			Message:       "Busca substituída por uma requisição mais recente",
			Details:       state,
			Notifications: notificationsOf(r),
		})
		return
	}
	if failed != "" {
		apiErrors.Write(w, http.StatusBadGateway, apiErrors.APIError{
			Code:          apiErrors.ErrBackendRejected,
			Message:       failed,
			Details:       state,
			Notifications: notificationsOf(r),
		})
		return
	}
	writeJSON(w, r, http.StatusOK, state)
}

func writeDownload(w http.ResponseWriter, download *domain.Download) {
	w.Header().Set("Content-Type", download.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(download.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(download.Body)
}

// decodeBody lê o payload JSON da requisição
func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errors.New("corpo da requisição vazio")
	}
	return json.Unmarshal(body, dst)
}

// decodeQuery preenche filtros e paginação a partir da query string usando as tags json
func decodeQuery(values url.Values, dst any) error {
	input := make(map[string]any, len(values))
	for key := range values {
		if v := values.Get(key); v != "" {
			input[key] = v
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
		Result:           dst,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

func paramID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido: %q", httprouter.ParamsFromContext(r.Context()).ByName("id"))
	}
	return id, nil
}

func badRequest(w http.ResponseWriter, r *http.Request, code, message string, err error) {
	log.ForContext(r.Context()).WithError(err).Warn(message)
	apiErrors.Write(w, apiErrors.StatusOf(code), apiErrors.APIError{
		Code:          code,
		Message:       message,
		Notifications: notificationsOf(r),
	})
}
