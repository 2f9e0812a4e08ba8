package store

import "github.com/adaptivecat/planner/ent"

func isNotFound(err error) bool {
	return ent.IsNotFound(err)
}
