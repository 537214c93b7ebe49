package discord

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// roundTripperFunc lets a test answer every REST call with a canned body
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// newOfflineSession builds a session whose REST layer never leaves the test
func newOfflineSession(t *testing.T, body string) *discordgo.Session {
	t.Helper()
	s, err := discordgo.New("Bot token-de-prueba")
	if err != nil {
		t.Fatalf("no se pudo crear la sesión: %v", err)
	}
	s.Client = &http.Client{
		Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
			}, nil
		}),
	}
	s.State.User = &discordgo.User{ID: "bot"}
	return s
}

func newTestClient(t *testing.T, body string) *ExtendedClient {
	t.Helper()
	// El logger global escribe en ./logs; que eso caiga en un directorio temporal
	t.Chdir(t.TempDir())
	c := &ExtendedClient{
		Session:  newOfflineSession(t, body),
		Commands: NewCommandCollection(),
	}
	c.CommandHandler = NewCommandHandler(c)
	return c
}

func commandInteraction(options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    "prueba",
				Options: options,
			},
		},
	}
}

func TestCommandBuilder(t *testing.T) {
	run := func(ctx *CommandContext) error { return nil }

	opt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "razon",
		Description: "Razón",
		Required:    true,
	}

	cmd := NewCommand("warn", "Advierte a un usuario", "mod", run).
		WithOptions(opt).
		WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionSendMessages)

	if cmd.Name != "warn" || cmd.Description != "Advierte a un usuario" || cmd.Category != "mod" {
		t.Errorf("campos base incorrectos: %+v", cmd)
	}
	if cmd.Run == nil {
		t.Error("el handler quedó en nil")
	}
	if len(cmd.Options) != 1 || cmd.Options[0].Name != "razon" {
		t.Errorf("opciones incorrectas: %+v", cmd.Options)
	}
	if cmd.UserPermissions != discordgo.PermissionModerateMembers {
		t.Errorf("UserPermissions = %d", cmd.UserPermissions)
	}
	if cmd.BotPermissions != discordgo.PermissionSendMessages {
		t.Errorf("BotPermissions = %d", cmd.BotPermissions)
	}
	if cmd.IsDev {
		t.Error("IsDev activo sin llamar a AsDev")
	}
	if !NewCommand("eval", "", "dev", run).AsDev().IsDev {
		t.Error("AsDev no marcó el comando")
	}
}

func TestToApplicationCommand(t *testing.T) {
	cmd := NewCommand("rank", "Tu nivel actual", "stats", func(ctx *CommandContext) error { return nil }).
		WithOptions(&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario",
		})

	appCmd := cmd.ToApplicationCommand()
	if appCmd.Name != "rank" || appCmd.Description != "Tu nivel actual" {
		t.Errorf("comando de aplicación incorrecto: %+v", appCmd)
	}
	if len(appCmd.Options) != 1 || appCmd.Options[0].Name != "usuario" {
		t.Errorf("opciones no trasladadas: %+v", appCmd.Options)
	}
}

func TestGetOptionsFlatAndNested(t *testing.T) {
	ctx := &CommandContext{
		Session: newOfflineSession(t, "{}"),
		Interaction: commandInteraction([]*discordgo.ApplicationCommandInteractionDataOption{
			{
				Name: "kick",
				Type: discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "razon", Type: discordgo.ApplicationCommandOptionString, Value: "spam"},
					{Name: "cantidad", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(7)},
					{Name: "confirmar", Type: discordgo.ApplicationCommandOptionBoolean, Value: true},
				},
			},
		}),
	}

	// Las opciones de un subcomando se resuelven igual que las planas
	if got := ctx.GetStringOption("razon"); got != "spam" {
		t.Errorf("GetStringOption = %q, se esperaba \"spam\"", got)
	}
	if got := ctx.GetIntOption("cantidad"); got != 7 {
		t.Errorf("GetIntOption = %d, se esperaba 7", got)
	}
	if !ctx.GetBoolOption("confirmar") {
		t.Error("GetBoolOption devolvió false")
	}
	if ctx.GetOption("inexistente") != nil {
		t.Error("GetOption inventó una opción que no existe")
	}
	if got := ctx.GetStringOption("inexistente"); got != "" {
		t.Errorf("GetStringOption de una opción ausente = %q", got)
	}
}

func TestUserFromMemberOrDM(t *testing.T) {
	inGuild := &CommandContext{
		Interaction: &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{
				Member: &discordgo.Member{User: &discordgo.User{ID: "u1"}},
			},
		},
	}
	if inGuild.User().ID != "u1" {
		t.Error("User() no usa el miembro dentro de un servidor")
	}

	inDM := &CommandContext{
		Interaction: &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{
				User: &discordgo.User{ID: "u2"},
			},
		},
	}
	if inDM.User().ID != "u2" {
		t.Error("User() no usa el usuario en mensajes directos")
	}
}

func TestGuildNilOutsideGuildOrOnCacheMiss(t *testing.T) {
	s := newOfflineSession(t, "{}")

	dm := &CommandContext{
		Session:     s,
		Interaction: &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}},
	}
	if dm.Guild() != nil {
		t.Error("Guild() devolvió algo fuera de un servidor")
	}

	// Con GuildID pero sin el guild en el estado, Guild() devuelve nil
	miss := &CommandContext{
		Session:     s,
		Interaction: &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{GuildID: "g-sin-cache"}},
	}
	if miss.Guild() != nil {
		t.Error("Guild() devolvió un guild que no está en el estado")
	}
}

func TestCheckPermissionsAllowsUnprivileged(t *testing.T) {
	client := newTestClient(t, "{}")
	cmd := NewCommand("ping", "Pong", "utils", func(ctx *CommandContext) error { return nil })

	ctx := &CommandContext{
		Session:     client.Session,
		Interaction: commandInteraction(nil),
		Client:      client,
	}
	if err := client.checkPermissions(ctx, cmd); err != nil {
		t.Errorf("comando sin permisos requeridos fue rechazado: %v", err)
	}
}

func TestCheckPermissionsRejectsMissingPermission(t *testing.T) {
	client := newTestClient(t, "{}")
	cmd := NewCommand("kick", "Expulsa", "mod", func(ctx *CommandContext) error { return nil }).
		WithUserPermissions(discordgo.PermissionKickMembers)

	interaction := commandInteraction(nil)
	interaction.Member = &discordgo.Member{
		User:        &discordgo.User{ID: "u1"},
		Permissions: discordgo.PermissionSendMessages,
	}
	interaction.GuildID = "g1"

	ctx := &CommandContext{Session: client.Session, Interaction: interaction, Client: client}
	if err := client.checkPermissions(ctx, cmd); err == nil {
		t.Error("un usuario sin el permiso pasó el filtro")
	}
}

func TestCheckPermissionsAdministratorBypasses(t *testing.T) {
	client := newTestClient(t, "{}")
	cmd := NewCommand("ban", "Banea", "mod", func(ctx *CommandContext) error { return nil }).
		WithUserPermissions(discordgo.PermissionBanMembers)

	interaction := commandInteraction(nil)
	interaction.Member = &discordgo.Member{
		User:        &discordgo.User{ID: "admin"},
		Permissions: discordgo.PermissionAdministrator,
	}
	interaction.GuildID = "g1"

	ctx := &CommandContext{Session: client.Session, Interaction: interaction, Client: client}
	if err := client.checkPermissions(ctx, cmd); err != nil {
		t.Errorf("un administrador fue rechazado: %v", err)
	}
}

func TestCheckPermissionsRejectsOutsideGuild(t *testing.T) {
	client := newTestClient(t, "{}")
	cmd := NewCommand("kick", "Expulsa", "mod", func(ctx *CommandContext) error { return nil }).
		WithUserPermissions(discordgo.PermissionKickMembers)

	ctx := &CommandContext{
		Session:     client.Session,
		Interaction: commandInteraction(nil),
		Client:      client,
	}
	if err := client.checkPermissions(ctx, cmd); err == nil {
		t.Error("un comando privilegiado se aceptó fuera de un servidor")
	}
}

func TestRegisterCommandSeparatesDevCommands(t *testing.T) {
	client := newTestClient(t, "{}")
	ch := client.CommandHandler

	run := func(ctx *CommandContext) error { return nil }
	ch.RegisterCommand(NewCommand("ping", "Pong", "utils", run))
	ch.RegisterCommand(NewCommand("eval", "Evalúa", "dev", run).AsDev())

	if _, ok := client.Commands.Get("ping"); !ok {
		t.Error("el comando normal no quedó en la colección")
	}
	if _, ok := client.Commands.Get("eval"); !ok {
		t.Error("el comando dev no quedó en la colección")
	}
	if len(ch.slashCommands) != 1 || ch.slashCommands[0].Name != "ping" {
		t.Errorf("lista global incorrecta: %+v", ch.slashCommands)
	}
	if len(ch.slashCommandsDev) != 1 || ch.slashCommandsDev[0].Name != "eval" {
		t.Errorf("lista dev incorrecta: %+v", ch.slashCommandsDev)
	}
}

func TestBuildCommandGroupRoutesSubcommands(t *testing.T) {
	client := newTestClient(t, "{}")
	ch := client.CommandHandler

	run := func(ctx *CommandContext) error { return nil }
	kick := NewCommand("kick", "Expulsa", "mod", run)
	ban := NewCommand("ban", "Banea", "mod", run)

	group := ch.BuildCommandGroup("mod", "Moderación", kick, ban)

	if group.Name != "mod" || len(group.Options) != 2 {
		t.Fatalf("grupo mal construido: %+v", group)
	}
	for _, opt := range group.Options {
		if opt.Type != discordgo.ApplicationCommandOptionSubCommand {
			t.Errorf("opción %q no es un subcomando", opt.Name)
		}
	}

	// El enrutado usa claves "grupo.subcomando"
	if _, ok := client.Commands.Get("mod.kick"); !ok {
		t.Error("mod.kick no quedó registrado")
	}
	if _, ok := client.Commands.Get("mod.ban"); !ok {
		t.Error("mod.ban no quedó registrado")
	}
}

func TestBuildDevCommandGroupGoesToDevList(t *testing.T) {
	client := newTestClient(t, "{}")
	ch := client.CommandHandler

	ch.BuildDevCommandGroup("dev", "Desarrollo",
		NewCommand("eval", "Evalúa", "dev", func(ctx *CommandContext) error { return nil }))

	if len(ch.slashCommandsDev) != 1 || ch.slashCommandsDev[0].Name != "dev" {
		t.Errorf("el grupo dev no quedó en la lista dev: %+v", ch.slashCommandsDev)
	}
	if len(ch.slashCommands) != 0 {
		t.Error("el grupo dev se coló en la lista global")
	}
}

func TestListAndSyncAgainstRestLayer(t *testing.T) {
	client := newTestClient(t, "[]")
	ch := client.CommandHandler

	global, err := ch.ListGlobalCommands()
	if err != nil {
		t.Fatalf("ListGlobalCommands falló: %v", err)
	}
	if len(global) != 0 {
		t.Errorf("comandos globales = %d, se esperaba 0", len(global))
	}

	guild, err := ch.ListGuildCommands("g1")
	if err != nil {
		t.Fatalf("ListGuildCommands falló: %v", err)
	}
	if len(guild) != 0 {
		t.Errorf("comandos del servidor = %d, se esperaba 0", len(guild))
	}

	if err := ch.UnregisterGuildCommands("g1"); err != nil {
		t.Errorf("UnregisterGuildCommands falló: %v", err)
	}

	ch.AddGlobalCommand(&discordgo.ApplicationCommand{Name: "ping", Description: "Pong"})
	if err := ch.SyncCommands(); err != nil {
		t.Errorf("SyncCommands falló: %v", err)
	}
}
