package domain

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID          int         `json:"idUsuario"`
	Name        string      `json:"nome"`
	Login       string      `json:"login"`
	AccessLevel AccessLevel `json:"nivelAcesso"`
}

type UserView struct {
	User
	AccessLevelLabel string `json:"nivelAcessoLabel"`
	AccessLevelColor string `json:"nivelAcessoCor"`
}

func NewUserView(u User) UserView {
	return UserView{
		User:             u,
		AccessLevelLabel: AccessLevelLabel(int(u.AccessLevel)),
		AccessLevelColor: AccessLevelColor(int(u.AccessLevel)),
	}
}

// UserInput é o payload de cadastro/edição; na edição a senha vazia mantém a atual
type UserInput struct {
	Name        string      `json:"nome,omitempty"`
	Login       string      `json:"login,omitempty"`
	Password    string      `json:"senha,omitempty"`
	AccessLevel AccessLevel `json:"nivelAcesso,omitempty"`
}

func (in *UserInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Login = strings.TrimSpace(in.Login)
}

// Validate valida o cadastro; creating exige senha
func (in UserInput) Validate(creating bool) error {
	verr := &ValidationError{}
	verr.requireText("nome", in.Name)
	verr.requireText("login", in.Login)
	if creating && in.Password == "" {
		verr.Add("senha", "campo obrigatório")
	}
	if in.Password != "" && len(in.Password) < 6 {
		verr.Add("senha", "deve ter pelo menos 6 caracteres")
	}
	if !in.AccessLevel.Valid() {
		verr.Add("nivelAcesso", "nível de acesso inválido")
	}
	return verr.Err()
}

type UserFilters struct {
	Name        string `json:"nome,omitempty"`
	AccessLevel int    `json:"nivelAcesso,omitempty"`
}

type UserQuery struct {
	UserFilters
	PageRequest
}

// Claims são as informações do token emitido pelo backend Casa Alves
type Claims struct {
	UserID      int         `json:"idUsuario"`
	UserName    string      `json:"nome"`
	UserLogin   string      `json:"login"`
	AccessLevel AccessLevel `json:"nivelAcesso"`
	jwt.RegisteredClaims
}

// Me é a resposta de /v1/me
type Me struct {
	UserID      int                    `json:"idUsuario"`
	Name        string                 `json:"nome"`
	Login       string                 `json:"login"`
	AccessLevel AccessLevelDescription `json:"nivelAcesso"`
	CanModify   bool                   `json:"podeModificar"`
	IsAdmin     bool                   `json:"administrador"`
}

func NewMe(c *Claims) Me {
	return Me{
		UserID:      c.UserID,
		Name:        c.UserName,
		Login:       c.UserLogin,
		AccessLevel: DescribeAccessLevel(int(c.AccessLevel)),
		CanModify:   c.AccessLevel.CanModify(),
		IsAdmin:     c.AccessLevel.IsAdmin(),
	}
}
