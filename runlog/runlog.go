// Package runlog records analysis results in a bolt database keyed by
// the analysis parameters, so repeated runs can be detected and
// inspected later.
package runlog

import (
	"encoding/json"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("runlog")

// MAIN is the bucket name for all records
var MAIN = []byte("main")

// Record stores the parameters and the results of a single analysis.
type Record struct {
	Time       time.Time          `json:"time"`
	Parameters map[string]float64 `json:"parameters"`
	Results    map[string]float64 `json:"results"`
}

// RunIO provides operations with the run database for one parameter
// set.
type RunIO struct {
	db  *bolt.DB
	key []byte
}

// NewRunIO creates a new RunIO; the record key is derived from the
// parameter values.
func NewRunIO(db *bolt.DB, parameters map[string]float64) (s *RunIO, err error) {
	// map keys are sorted during marshaling, so the key is
	// deterministic
	key, err := json.Marshal(parameters)
	if err != nil {
		return nil, err
	}
	s = &RunIO{
		db:  db,
		key: key,
	}
	return s, nil
}

// Save saves the record of the current run to the database.
func (s *RunIO) Save(rec *Record) error {
	dataB, err := json.Marshal(rec)
	if err != nil {
		log.Error("Error serializing run record", err)
		return err
	}
	err = SaveData(s.db, s.key, dataB)
	if err != nil {
		log.Error("Error saving run record", err)
	}
	return err
}

// Previous returns the record of an earlier run with the same
// parameters, nil if there was none.
func (s *RunIO) Previous() (*Record, error) {
	var rec *Record

	b, err := LoadData(s.db, s.key)

	if err != nil || b == nil {
		return nil, err
	}

	err = json.Unmarshal(b, &rec)

	if err != nil {
		return nil, err
	}

	if rec == nil || len(rec.Results) == 0 {
		return nil, nil
	}

	log.Noticef("Found a previous run with the same parameters (%v)", rec.Time)

	return rec, nil
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(MAIN)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(MAIN)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
