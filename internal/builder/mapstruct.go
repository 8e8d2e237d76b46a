package builder

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/avireddy0/XERReader/pkg/xer"
)

// rsrcRow and its siblings below are decoded with mapstructure instead of
// hand-coded field-by-field coercion: RSRC, ACTVTYPE, and ACTVCODE carry
// no date fields, so a declarative struct tag is simpler than the manual
// coercion PROJECT and TASK need. Every field below is a raw string; the
// enum tokens (rsrc_type, actv_code_type_scope) and numeric cells are
// coerced afterwards by the build* functions with the Parse*/parse*
// helpers.
type rsrcRow struct {
	RsrcID        string `mapstructure:"rsrc_id"`
	RsrcShortName string `mapstructure:"rsrc_short_name"`
	RsrcName      string `mapstructure:"rsrc_name"`
	RsrcType      string `mapstructure:"rsrc_type"`
	UnitID        string `mapstructure:"unit_id"`
	DefQtyPerHr   string `mapstructure:"def_qty_per_hr"`
}

type actvTypeRow struct {
	ActvCodeTypeID    string `mapstructure:"actv_code_type_id"`
	ActvCodeType      string `mapstructure:"actv_code_type"`
	ProjID            string `mapstructure:"proj_id"`
	ActvShortLen      string `mapstructure:"actv_short_len"`
	SeqNum            string `mapstructure:"seq_num"`
	ActvCodeTypeScope string `mapstructure:"actv_code_type_scope"`
}

type actvCodeRow struct {
	ActvCodeID       string `mapstructure:"actv_code_id"`
	ActvCodeTypeID   string `mapstructure:"actv_code_type_id"`
	ParentActvCodeID string `mapstructure:"parent_actv_code_id"`
	ActvCodeName     string `mapstructure:"actv_code_name"`
	ShortName        string `mapstructure:"short_name"`
	SeqNum           string `mapstructure:"seq_num"`
	Color            string `mapstructure:"color"`
}

func decodeRows[T any](tbl *xer.Table) ([]T, error) {
	if tbl == nil {
		return nil, nil
	}
	out := make([]T, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		var rec T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &rec,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(map[string]string(row)); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
