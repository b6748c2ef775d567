package domain

// AccessLevel é o nível de acesso (nivelAcesso) do usuário
type AccessLevel int

const (
	AccessLevelUser    AccessLevel = 1
	AccessLevelManager AccessLevel = 2
	AccessLevelAdmin   AccessLevel = 3
)

const (
	unknownAccessLevelLabel = "Desconhecido"
	unknownAccessLevelColor = "gray"
)

type accessLevelDisplay struct {
	label string
	color string
}

var accessLevels = map[AccessLevel]accessLevelDisplay{
	AccessLevelUser:    {label: "Usuário", color: "blue"},
	AccessLevelManager: {label: "Gerente", color: "green"},
	AccessLevelAdmin:   {label: "Administrador", color: "purple"},
}

// AccessLevelDescription é a representação de exibição de um nível de acesso
type AccessLevelDescription struct {
	Level AccessLevel `json:"nivelAcesso"`
	Label string      `json:"label"`
	Color string      `json:"color"`
}

// AccessLevelLabel retorna o nome de exibição do nível; valores desconhecidos retornam "Desconhecido"
func AccessLevelLabel(level int) string {
	if d, ok := accessLevels[AccessLevel(level)]; ok {
		return d.label
	}
	return unknownAccessLevelLabel
}

// AccessLevelColor retorna a cor do badge do nível; valores desconhecidos retornam "gray"
func AccessLevelColor(level int) string {
	if d, ok := accessLevels[AccessLevel(level)]; ok {
		return d.color
	}
	return unknownAccessLevelColor
}

func DescribeAccessLevel(level int) AccessLevelDescription {
	return AccessLevelDescription{
		Level: AccessLevel(level),
		Label: AccessLevelLabel(level),
		Color: AccessLevelColor(level),
	}
}

// AccessLevels lista os níveis conhecidos em ordem crescente
func AccessLevels() []AccessLevelDescription {
	return []AccessLevelDescription{
		DescribeAccessLevel(int(AccessLevelUser)),
		DescribeAccessLevel(int(AccessLevelManager)),
		DescribeAccessLevel(int(AccessLevelAdmin)),
	}
}

func (l AccessLevel) Valid() bool {
	_, ok := accessLevels[l]
	return ok
}

// CanModify indica se o nível pode criar, editar, excluir e exportar registros
func (l AccessLevel) CanModify() bool {
	return l == AccessLevelManager || l == AccessLevelAdmin
}

// IsAdmin indica se o nível pode administrar usuários e logs
func (l AccessLevel) IsAdmin() bool {
	return l == AccessLevelAdmin
}
