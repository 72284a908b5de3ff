package cdclient

import (
	"iter"
	"strconv"
	"strings"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// ItemSet is the decoded form of an ItemSets row.
type ItemSet struct {
	ItemIDs  []int32 `json:"itemIDs"`
	KitType  int32   `json:"kitType"`
	KitRank  int32   `json:"kitRank"`
	KitImage *int32  `json:"kitImage,omitempty"`
}

// GetData decodes the item set with the id. Entries of itemIDs that are not
// integers are skipped.
func (t *ItemSetsTable) GetData(id int32) (ItemSet, bool, error) {
	if err := t.Require(ItemSetsItemIDs, ItemSetsKitType); err != nil {
		return ItemSet{}, false, err
	}
	row, ok := t.Get(id)
	if !ok {
		return ItemSet{}, false, nil
	}
	ids, err := row.ItemIDs()
	if err != nil {
		return ItemSet{}, false, err
	}
	kitType, err := row.KitType()
	if err != nil {
		return ItemSet{}, false, err
	}
	set := ItemSet{
		ItemIDs: ParseLOTList(ids.Decode()),
		KitType: kitType,
	}
	set.KitRank, _ = row.KitRank()
	if img, ok := row.KitImage(); ok {
		set.KitImage = &img
	}
	return set, true, nil
}

// ParseLOTList parses a comma separated list of object template ids.
func ParseLOTList(s string) []int32 {
	var out []int32
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			continue
		}
		out = append(out, int32(n))
	}
	return out
}

// SkillBehavior is the decoded form of a SkillBehavior row.
type SkillBehavior struct {
	SkillIcon *int32 `json:"skillIcon,omitempty"`
}

// GetData decodes the skill with the id.
func (t *SkillBehaviorTable) GetData(id int32) (SkillBehavior, bool) {
	row, ok := t.Get(id)
	if !ok {
		return SkillBehavior{}, false
	}
	var sb SkillBehavior
	if icon, ok := row.SkillIcon(); ok {
		sb.SkillIcon = &icon
	}
	return sb, true
}

// ObjectRef names an object.
type ObjectRef struct {
	ID   int32         `json:"id"`
	Name fdb.Latin1Str `json:"name"`
}

// Refs yields an ObjectRef for every object in table order.
func (t *ObjectsTable) Refs() (iter.Seq[ObjectRef], error) {
	if err := t.Require(ObjectsID, ObjectsName); err != nil {
		return nil, err
	}
	return func(yield func(ObjectRef) bool) {
		for row := range t.Rows() {
			id, _ := row.ID()
			name, _ := row.Name()
			if !yield(ObjectRef{ID: id, Name: name}) {
				return
			}
		}
	}, nil
}

// MissionTaskIcon is the icon data of a mission task.
type MissionTaskIcon struct {
	UID             int32  `json:"uid"`
	LargeTaskIconID *int32 `json:"largeTaskIconID"`
}

// TaskIcons yields the icon data of the tasks of the mission with the key.
func (t *MissionTasksTable) TaskIcons(key int32) (iter.Seq[MissionTaskIcon], error) {
	if err := t.Require(MissionTasksUID); err != nil {
		return nil, err
	}
	return func(yield func(MissionTaskIcon) bool) {
		for row := range t.Lookup(key) {
			uid, _ := row.UID()
			icon := MissionTaskIcon{UID: uid}
			if id, ok := row.LargeTaskIconID(); ok {
				icon.LargeTaskIconID = &id
			}
			if !yield(icon) {
				return
			}
		}
	}, nil
}
