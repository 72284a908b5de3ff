package cdclient

import (
	"fmt"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// ComponentTypeRender is the ComponentsRegistry component_type of the
// render component.
const ComponentTypeRender int32 = 2

// MissionKind tells missions from achievements.
type MissionKind int

const (
	KindAchievement MissionKind = iota
	KindMission
)

func (k MissionKind) String() string {
	if k == KindMission {
		return "mission"
	}
	return "achievement"
}

// MarshalText implements encoding.TextMarshaler.
func (k MissionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Mission is the summary of a Missions row.
type Mission struct {
	IconID    *int32 `json:"iconID,omitempty"`
	IsMission bool   `json:"isMission"`
}

// Kind returns KindMission unless the row is an achievement.
func (m Mission) Kind() MissionKind {
	if m.IsMission {
		return KindMission
	}
	return KindAchievement
}

// MissionTask is the summary of a MissionTasks row.
type MissionTask struct {
	IconID *int32 `json:"iconID,omitempty"`
	UID    int32  `json:"uid"`
}

// Components lists the components of an object that the helpers know about.
type Components struct {
	Render *int32 `json:"render,omitempty"`
}

// GetIconPath returns the IconPath of the Icons row with the id.
func (db *Database) GetIconPath(id int32) (fdb.Latin1Str, bool) {
	row, ok := db.Icons.Get(id)
	if !ok {
		return nil, false
	}
	return row.IconPath()
}

// GetMissionData returns the summary of the mission with the id. isMission
// defaults to true when null.
func (db *Database) GetMissionData(id int32) (Mission, bool) {
	row, ok := db.Missions.Get(id)
	if !ok {
		return Mission{}, false
	}
	m := Mission{IsMission: true}
	if icon, ok := row.MissionIconID(); ok {
		m.IconID = &icon
	}
	if isMission, ok := row.IsMission(); ok {
		m.IsMission = isMission
	}
	return m, true
}

// GetMissionTasks returns the tasks of the mission with the id in table
// order.
func (db *Database) GetMissionTasks(id int32) ([]MissionTask, error) {
	if err := db.MissionTasks.Require(MissionTasksUID); err != nil {
		return nil, err
	}
	var tasks []MissionTask
	for row := range db.MissionTasks.Lookup(id) {
		uid, err := row.UID()
		if err != nil {
			return nil, err
		}
		task := MissionTask{UID: uid}
		if icon, ok := row.IconID(); ok {
			task.IconID = &icon
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GetObjectNameDesc returns a display title and a description for the
// object with the id. The title always ends in "Object #<id>".
func (db *Database) GetObjectNameDesc(id int32) (title, desc string, ok bool) {
	row, ok := db.Objects.Get(id)
	if !ok {
		return "", "", false
	}
	name, _ := row.Name()
	display, _ := row.DisplayName()
	description, _ := row.Description()
	notes, _ := row.InternalNotes()

	title = objectTitle(id, name.Decode(), display.Decode())
	desc = joinDistinct(description.Decode(), notes.Decode())
	return title, desc, true
}

func objectTitle(id int32, name, display string) string {
	switch {
	case name != "" && display != "" && name != display:
		return fmt.Sprintf("%s (%s) | Object #%d", display, name, id)
	case name != "":
		return fmt.Sprintf("%s | Object #%d", name, id)
	case display != "":
		return fmt.Sprintf("%s | Object #%d", display, id)
	default:
		return fmt.Sprintf("Object #%d", id)
	}
}

func joinDistinct(primary, secondary string) string {
	switch {
	case primary != "" && secondary != "" && primary != secondary:
		return primary + " (" + secondary + ")"
	case primary != "":
		return primary
	default:
		return secondary
	}
}

// GetRenderImage returns the icon_asset of the RenderComponent row with the
// id.
func (db *Database) GetRenderImage(id int32) (fdb.Latin1Str, bool) {
	row, ok := db.RenderComponent.Get(id)
	if !ok {
		return nil, false
	}
	return row.IconAsset()
}

// GetComponents returns the known components registered for the object.
func (db *Database) GetComponents(id int32) (Components, error) {
	if err := db.ComponentsRegistry.Require(ComponentsRegistryComponentType, ComponentsRegistryComponentID); err != nil {
		return Components{}, err
	}
	var comps Components
	for row := range db.ComponentsRegistry.Lookup(id) {
		kind, err := row.ComponentType()
		if err != nil {
			return Components{}, err
		}
		if kind != ComponentTypeRender {
			continue
		}
		cid, err := row.ComponentID()
		if err != nil {
			return Components{}, err
		}
		comps.Render = &cid
	}
	return comps, nil
}
