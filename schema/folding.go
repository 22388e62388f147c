package schema

import (
	"github.com/siherrmann/jobSchema/model"
)

// FoldArgs reconciles structured and custom arguments of a run. Non-empty
// custom arguments replace the structured ones.
func FoldArgs(args model.DataMap, customArgs model.DataMap) model.DataMap {
	if len(customArgs) > 0 {
		return customArgs
	}
	return args
}
