// internal/defs/loot_tables.go
package defs

// LootEntry is one upgrade a pickup can roll, with its relative weight.
type LootEntry struct {
	Upgrade string `json:"upgrade"`
	Weight  int    `json:"weight"`
}

// PickupLoot is the upgrade table rolled when the vehicle touches a pickup.
// Keys match component.PickupKind.Key.
var PickupLoot = []LootEntry{
	{Upgrade: "shields", Weight: 1},
	{Upgrade: "speed", Weight: 1},
	{Upgrade: "ammo_boost", Weight: 1},
	{Upgrade: "rapid_fire", Weight: 1},
	{Upgrade: "bigger_ammo", Weight: 1},
}

// LootWeight returns the weight of upgrade, or 0 when it is not listed.
func LootWeight(upgrade string) int {
	for _, e := range PickupLoot {
		if e.Upgrade == upgrade {
			return e.Weight
		}
	}
	return 0
}
