package cmd

import "github.com/charmbracelet/lipgloss"

var (
	typeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	rectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	guideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	titleStyle = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 1)
)
