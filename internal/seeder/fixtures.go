package seeder

import "dermatriagem-api/internal/domain/entity"

var unidadesFixture = []entity.UnidadeSaude{
	{
		NomeUnidadeSaude:   "Unidade de Saúde Central",
		NomeLocalizacao:    "Rua das Flores, 123 - Centro, São Paulo",
		CodigoUnidadeSaude: "USC001",
		CidadeUnidadeSaude: "São Paulo",
		FlAtivo:            true,
	},
	{
		NomeUnidadeSaude:   "Posto de Saúde do Norte",
		NomeLocalizacao:    "Avenida Brasil, 456 - Bairro Alto, Rio de Janeiro",
		CodigoUnidadeSaude: "PSN002",
		CidadeUnidadeSaude: "Rio de Janeiro",
		FlAtivo:            true,
	},
	{
		NomeUnidadeSaude:   "Clínica Vida",
		NomeLocalizacao:    "Travessa das Acácias, 789 - Zona Sul, Belo Horizonte",
		CodigoUnidadeSaude: "CV003",
		CidadeUnidadeSaude: "Belo Horizonte",
		FlAtivo:            true,
	},
}

var rolesFixture = []entity.Role{
	{Name: entity.RoleAdmin, NivelAcesso: entity.NivelAcessoAdmin},
	{Name: entity.RoleSupervisor, NivelAcesso: entity.NivelAcessoSupervisor},
	{Name: entity.RolePesquisador, NivelAcesso: entity.NivelAcessoPesquisador},
}

type staffFixture struct {
	nome    string
	email   string
	cpf     string
	senha   string
	role    int // index into rolesFixture
	unidade int // index into unidadesFixture
}

var staffFixtures = []staffFixture{
	{"admin_brasil", "admin@exemplo.com", "11111111111", "admin123", 0, 0},
	{"supervisor_rj", "sup.rj@exemplo.com", "22222222222", "supervisor123", 1, 1},
	{"pesq_sp", "pesq.sp@exemplo.com", "33333333333", "pesquisador123", 2, 0},
	{"pesq_bh", "pesq.bh@exemplo.com", "44444444444", "pesquisador123", 2, 2},
	{"supervisor_bh", "sup.bh@exemplo.com", "55555555555", "supervisor123", 1, 2},
}

var (
	frequenciasAtividade  = []string{"Diária", "Frequente", "Moderada", "Ocasional"}
	grausParentesco       = []string{"Pai", "Mãe", "Avô/Avó", "Irmão/Irmã", entity.OpcaoOutro}
	tiposCancer           = []string{"Melanoma", "Carcinoma Basocelular", "Carcinoma Espinocelular", entity.OpcaoOutro}
	tiposTratamento       = []string{"Cirurgia", "Crioterapia", "Radioterapia", entity.OpcaoOutro}
	frequenciasExposicao  = []string{"Diariamente", "Algumas vezes por semana", "Ocasionalmente"}
	quantidadesQueimadura = []string{"1-2", "3-5", "Mais de 5"}
	fatoresProtecao       = []string{"15", "30", "50", "70", "100 ou mais"}
	frequenciasCheckup    = []string{"Anualmente", "A cada 6 meses", entity.OpcaoOutro}
	temposAlteracao       = []string{"Menos de 1 mês", "1-3 meses", "3-6 meses", "Mais de 6 meses"}
)
