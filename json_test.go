package b2histogram_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.elastic.co/fastjson"

	"github.com/int08h/b2histogram"
	"github.com/int08h/b2histogram/internal/histschema"
)

func TestMarshalFastJSON(t *testing.T) {
	var h b2histogram.Histogram
	h.Record(0)
	h.Record(11)
	h.Record(11)
	h.RecordN(300000, 6)

	var w fastjson.Writer
	require.NoError(t, h.MarshalFastJSON(&w))
	assert.Equal(t,
		`{"buckets":[{"begin":0,"end":0,"count":1},{"begin":8,"end":15,"count":2},{"begin":262144,"end":524287,"count":6}],"total":9}`,
		string(w.Bytes()),
	)
}

func TestMarshalJSONEmpty(t *testing.T) {
	var h b2histogram.Histogram
	data, err := json.Marshal(&h)
	require.NoError(t, err)
	assert.Equal(t, `{"buckets":[],"total":0}`, string(data))
}

func TestMarshalJSONBucket(t *testing.T) {
	data, err := json.Marshal(b2histogram.Bucket{Begin: 8, End: 15, Count: 2})
	require.NoError(t, err)
	assert.Equal(t, `{"begin":8,"end":15,"count":2}`, string(data))
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	var h b2histogram.Histogram
	for i := uint(0); i < 40; i += 3 {
		h.RecordN(1<<i+1, uint64(i)+1)
	}

	data, err := h.MarshalJSON()
	require.NoError(t, err)

	var decoded struct {
		Buckets []b2histogram.Bucket
		Total   uint64
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	var expect []b2histogram.Bucket
	for it := h.Iter(); it.Next(); {
		if b := it.Bucket(); b.Count > 0 {
			expect = append(expect, b)
		}
	}
	if diff := cmp.Diff(expect, decoded.Buckets); diff != "" {
		t.Errorf("buckets differ (-want +got):\n%s", diff)
	}
	assert.Equal(t, h.Total(), decoded.Total)
}

func TestMarshalJSONSchema(t *testing.T) {
	schema, err := histschema.Compile()
	require.NoError(t, err)

	var h b2histogram.Histogram
	for i := uint(0); i < 50; i++ {
		h.RecordN(1<<i, uint64(i)+1)
	}
	h.Record(0)

	data, err := h.MarshalJSON()
	require.NoError(t, err)
	assert.NoError(t, schema.Validate(bytes.NewReader(data)))

	var empty b2histogram.Histogram
	data, err = empty.MarshalJSON()
	require.NoError(t, err)
	assert.NoError(t, schema.Validate(bytes.NewReader(data)))
}
