package catalog

import "conectcliente/models"

// services is the fixed catalogue of drone services offered to clients.
var services = []models.Service{
	{
		ID:          1,
		Title:       "Fotos Aéreas",
		Description: "Captura de imagens aéreas em alta resolução, ideais para imóveis, paisagens, construções e muito mais, com ângulos privilegiados e perspectiva única.",
	},
	{
		ID:          2,
		Title:       "Filmagens Aéreas",
		Description: "Gravações aéreas com drones de última geração, perfeitas para eventos, publicidade, vídeos institucionais ou documentais.",
	},
	{
		ID:          3,
		Title:       "Mapeamento e Topografia",
		Description: "Coleta de dados geográficos e geração de mapas com precisão, aplicados em obras, agricultura, urbanismo e estudos ambientais.",
	},
	{
		ID:          4,
		Title:       "Monitoramento Ambiental",
		Description: "Uso de drones para acompanhar alterações em áreas naturais, reflorestamentos, bacias hidrográficas ou regiões de risco ambiental.",
	},
	{
		ID:          5,
		Title:       "Cobertura de Eventos",
		Description: "Registros aéreos de casamentos, festivais, inaugurações e outros eventos, oferecendo ângulos dinâmicos e impactantes para recordações ou divulgação.",
	},
	{
		ID:          6,
		Title:       "Produção de Vídeos Publicitários",
		Description: "Criação de vídeos promocionais com imagens aéreas envolventes, aumentando o impacto visual de campanhas comerciais ou institucionais.",
	},
	{
		ID:          7,
		Title:       "Inspeções de Estruturas",
		Description: "Avaliação aérea de pontes, torres, telhados e outras estruturas com segurança e eficiência, reduzindo riscos e custos operacionais.",
	},
}

// List returns the full catalogue.
func List() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}

// ServiceTitles returns only the titles, in catalogue order.
func ServiceTitles() []string {
	titles := make([]string, len(services))
	for i, s := range services {
		titles[i] = s.Title
	}
	return titles
}
