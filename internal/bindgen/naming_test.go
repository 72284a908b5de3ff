package bindgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"missionIconID", []string{"mission", "Icon", "ID"}},
		{"AICombatWeight", []string{"AI", "Combat", "Weight"}},
		{"HQ_valid", []string{"HQ", "valid"}},
		{"_internalNotes", []string{"internal", "Notes"}},
		{"itemIDs", []string{"item", "IDs"}},
		{"taskParam1", []string{"task", "Param1"}},
		{"offset_x", []string{"offset", "x"}},
		{"isnpc", []string{"isnpc"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.in))
		})
	}
}

func TestPascal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id", "ID"},
		{"uid", "UID"},
		{"missionIconID", "MissionIconID"},
		{"UISortOrder", "UISortOrder"},
		{"HQ_valid", "HQValid"},
		{"itemIDs", "ItemIDs"},
		{"inNpcEditor", "InNPCEditor"},
		{"lotBlocker", "LOTBlocker"},
		{"imBonusUI", "ImBonusUI"},
		{"component_type", "ComponentType"},
		{"LootTable", "LootTable"},
		{"type", "Type"},
		{"404", "X404"},
		{"---", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Pascal(tt.in))
		})
	}
}

func TestCamel(t *testing.T) {
	assert.Equal(t, "missionsDef", Camel("Missions")+"Def")
	assert.Equal(t, "behaviorParameter", Camel("BehaviorParameter"))
	assert.Equal(t, "idList", Camel("ID_list"))
	assert.Equal(t, "type_", Camel("type"), "keywords are escaped")
	assert.Equal(t, "x9lives", Camel("9lives"))
}

func TestAccessorName(t *testing.T) {
	tests := []struct {
		column string
		want   string
	}{
		{"name", "Name"},
		{"record", "Record_"},
		{"key", "Key_"},
		{"table", "Table_"},
		{"row", "Row_"},
		{"value", "Value"},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			assert.Equal(t, tt.want, AccessorName(tt.column))
		})
	}
}
