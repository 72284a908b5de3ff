package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LUDevNet/paradox-typed-db/internal/cli/output"
	"github.com/LUDevNet/paradox-typed-db/pkg/cdclient"
)

// ErrNotFound is returned when an info lookup has no row.
var ErrNotFound = errors.New("not found")

// NewInfoCommand creates the info command and its lookups.
func NewInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Look up objects, missions, icons and item sets",
		Long: `Run the domain lookups over the assembled database. Every subcommand takes
the numeric id of the thing to look up and fails if there is none.`,
		Example: `  ptdb info object 1727
  ptdb info mission 173 -o json`,
	}

	cmd.AddCommand(
		newInfoSubcommand("object <id>", "Show the display title and description of an object", infoObject),
		newInfoSubcommand("mission <id>", "Show the kind, icon and tasks of a mission", infoMission),
		newInfoSubcommand("icon <id>", "Show the path of an icon", infoIcon),
		newInfoSubcommand("itemset <id>", "Show the items and kit of an item set", infoItemSet),
		newInfoSubcommand("skill <id>", "Show the icon of a skill", infoSkill),
		newInfoSubcommand("components <id>", "Show the known components of an object", infoComponents),
	)
	return cmd
}

// infoResult is a lookup result: ordered display fields and the value
// printed in JSON mode.
type infoResult struct {
	title  string
	fields [][2]string
	value  any
}

type infoFunc func(db *cdclient.Database, id int32) (*infoResult, error)

func newInfoSubcommand(use, short string, fn infoFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseKey(args[0])
			if err != nil {
				return err
			}
			c := NewCommandContext(cmd)
			res, err := lookupInfo(cmd.Context(), c, id, fn)
			if err != nil {
				return err
			}
			return renderInfo(c.Renderer, res)
		},
	}
}

func lookupInfo(ctx context.Context, c *CommandContext, id int32, fn infoFunc) (*infoResult, error) {
	db, err := c.OpenDatabase(ctx)
	if err != nil {
		return nil, err
	}
	return fn(db, id)
}

func infoObject(db *cdclient.Database, id int32) (*infoResult, error) {
	title, desc, ok := db.GetObjectNameDesc(id)
	if !ok {
		return nil, fmt.Errorf("object %d: %w", id, ErrNotFound)
	}
	return &infoResult{
		title:  title,
		fields: [][2]string{{"Description", desc}},
		value: struct {
			ID          int32  `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description"`
		}{id, title, desc},
	}, nil
}

func infoMission(db *cdclient.Database, id int32) (*infoResult, error) {
	m, ok := db.GetMissionData(id)
	if !ok {
		return nil, fmt.Errorf("mission %d: %w", id, ErrNotFound)
	}
	tasks, err := db.GetMissionTasks(id)
	if err != nil {
		return nil, err
	}

	uids := make([]string, len(tasks))
	for i, t := range tasks {
		uids[i] = strconv.Itoa(int(t.UID))
	}
	return &infoResult{
		title: fmt.Sprintf("Mission #%d", id),
		fields: [][2]string{
			{"Kind", m.Kind().String()},
			{"Icon", optInt(m.IconID)},
			{"Tasks", strings.Join(uids, ", ")},
		},
		value: struct {
			ID int32 `json:"id"`
			cdclient.Mission
			Kind  cdclient.MissionKind   `json:"kind"`
			Tasks []cdclient.MissionTask `json:"tasks"`
		}{id, m, m.Kind(), tasks},
	}, nil
}

func infoIcon(db *cdclient.Database, id int32) (*infoResult, error) {
	path, ok := db.GetIconPath(id)
	if !ok {
		return nil, fmt.Errorf("icon %d: %w", id, ErrNotFound)
	}
	return &infoResult{
		title:  fmt.Sprintf("Icon #%d", id),
		fields: [][2]string{{"Path", path.Decode()}},
		value: struct {
			ID   int32  `json:"id"`
			Path string `json:"path"`
		}{id, path.Decode()},
	}, nil
}

func infoItemSet(db *cdclient.Database, id int32) (*infoResult, error) {
	set, ok, err := db.ItemSets.GetData(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("item set %d: %w", id, ErrNotFound)
	}
	items := make([]string, len(set.ItemIDs))
	for i, lot := range set.ItemIDs {
		items[i] = strconv.Itoa(int(lot))
	}
	return &infoResult{
		title: fmt.Sprintf("Item Set #%d", id),
		fields: [][2]string{
			{"Items", strings.Join(items, ", ")},
			{"Kit Type", strconv.Itoa(int(set.KitType))},
			{"Kit Rank", strconv.Itoa(int(set.KitRank))},
			{"Kit Image", optInt(set.KitImage)},
		},
		value: set,
	}, nil
}

func infoSkill(db *cdclient.Database, id int32) (*infoResult, error) {
	skill, ok := db.SkillBehavior.GetData(id)
	if !ok {
		return nil, fmt.Errorf("skill %d: %w", id, ErrNotFound)
	}
	return &infoResult{
		title:  fmt.Sprintf("Skill #%d", id),
		fields: [][2]string{{"Icon", optInt(skill.SkillIcon)}},
		value:  skill,
	}, nil
}

func infoComponents(db *cdclient.Database, id int32) (*infoResult, error) {
	comps, err := db.GetComponents(id)
	if err != nil {
		return nil, err
	}
	return &infoResult{
		title:  fmt.Sprintf("Object #%d", id),
		fields: [][2]string{{"Render", optInt(comps.Render)}},
		value:  comps,
	}, nil
}

func optInt(v *int32) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(int(*v))
}

func renderInfo(r *output.Renderer, res *infoResult) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(res.value)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, res.title))
		r.Println()
		for _, f := range res.fields {
			r.Println(output.FormatKeyValue(f[0], f[1]))
		}
	default:
		s := r.Styles()
		r.Println(s.Header1.Render(res.title))
		for _, f := range res.fields {
			r.Printf("  %s %s\n", s.Muted.Render(f[0]+":"), f[1])
		}
	}
	return nil
}
