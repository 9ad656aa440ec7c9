// Seed command loads a small demo dataset for trying out the CLI.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agencykit/opsdeck/internal/store"
	"github.com/agencykit/opsdeck/pkg/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a demo dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			failSys("seed: %s", err)
		}
		defer st.Detach()

		count, err := seedDemoData(st)
		if err != nil {
			failUser("seed: %s", err)
		}

		fmt.Printf("Seeded %d demo records\n", count)
		return nil
	},
}

// seedDemoData adds the demo records and returns how many were created.
func seedDemoData(st *store.Store) (int, error) {
	count := 0
	date := func(s string) *time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return &t
	}

	clients := []*types.Client{
		{Name: "Ana Souza", Company: "Padaria Estrela", Email: "ana@padariaestrela.com.br", MRR: 2500, Status: types.ClientStatusActive},
		{Name: "Bruno Lima", Company: "Lima Imoveis", Email: "bruno@limaimoveis.com.br", MRR: 4000, Status: types.ClientStatusActive},
		{Name: "Carla Mendes", Company: "Estudio CM", Email: "carla@estudiocm.com.br", MRR: 1800, Status: types.ClientStatusPaused},
	}
	for _, c := range clients {
		if _, err := st.Clients().Add(c); err != nil {
			return count, err
		}
		count++
	}

	leads := []*types.Lead{
		{Name: "Diego Alves", Company: "Alves Fitness", Email: "diego@alvesfitness.com.br", Stage: types.StageProspect, EstimatedValue: 3000, Source: "indicacao"},
		{Name: "Elisa Rocha", Company: "Rocha Advocacia", Email: "elisa@rochaadv.com.br", Stage: types.StageQualifying, EstimatedValue: 5000, Source: "instagram"},
		{Name: "Fabio Costa", Company: "Costa Burgers", Email: "fabio@costaburgers.com.br", Stage: types.StageProposal, EstimatedValue: 2200, Source: "google"},
	}
	for _, l := range leads {
		if _, err := st.Leads().Add(l); err != nil {
			return count, err
		}
		count++
	}

	tasks := []*types.Task{
		{Title: "Onboarding Padaria Estrela", Status: types.TaskDoing, Assignee: "julia", Project: "Padaria Estrela", Priority: types.PriorityHigh},
		{Title: "Relatorio mensal Lima Imoveis", Status: types.TaskTodo, Assignee: "marcos", Project: "Lima Imoveis", Priority: types.PriorityMedium},
		{Title: "Revisar criativos de agosto", Status: types.TaskBacklog, Assignee: "julia", Priority: types.PriorityLow},
	}
	for _, t := range tasks {
		if _, err := st.Tasks().Add(t); err != nil {
			return count, err
		}
		count++
	}

	content := []*types.ContentItem{
		{Title: "Reels: bastidores da padaria", Channel: "instagram", Status: types.ContentDraft},
		{Title: "Post: lancamento imovel centro", Channel: "instagram", Status: types.ContentScheduled, PublishAt: date("2026-09-05")},
	}
	for _, c := range content {
		if _, err := st.Content().Add(c); err != nil {
			return count, err
		}
		count++
	}

	sops := []*types.SOPItem{
		{Title: "Checklist de onboarding", Category: "onboarding", Body: "1. Kickoff\n2. Acessos\n3. Briefing"},
		{Title: "Padrao de relatorio mensal", Category: "relatorios", Body: "KPIs, destaques, proximos passos."},
	}
	for _, s := range sops {
		if _, err := st.SOPs().Add(s); err != nil {
			return count, err
		}
		count++
	}

	meeting := &types.Meeting{
		Title:       "Alinhamento semanal",
		ScheduledAt: time.Now().AddDate(0, 0, 1),
		Attendees:   []string{"julia", "marcos"},
		Agenda:      []string{"pipeline", "entregas da semana"},
	}
	if _, err := st.Meetings().Add(meeting); err != nil {
		return count, err
	}
	count++

	campaign := &types.Campaign{
		Name:     "Trafego pago Padaria Estrela",
		Status:   types.CampaignActive,
		Budget:   1500,
		StartAt:  date("2026-08-01"),
	}
	if _, err := st.Campaigns().Add(campaign); err != nil {
		return count, err
	}
	count++

	perf := []*types.PerformanceEntry{
		{Month: "2026-07", Revenue: 9800, Expenses: 6200, NewClients: 1, ChurnedClients: 0, LeadsGenerated: 12},
		{Month: "2026-08", Revenue: 10400, Expenses: 6500, NewClients: 2, ChurnedClients: 1, LeadsGenerated: 15},
	}
	for _, p := range perf {
		if _, err := st.Performance().Add(p); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
