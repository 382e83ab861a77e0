// Copyright 2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// PgxIface is the subset of pgxpool.Pool the engine uses; pgxmock
// connections satisfy it as well
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

var (
	ErrNotConnected = errors.New("database pools are not connected")
)

var sourcePool PgxIface
var destPool PgxIface

// Connect creates the source (Genius) and destination connection pools from
// the data.source.url and data.dest.url configuration keys
func Connect(ctx context.Context) error {
	src, err := pgxpool.Connect(ctx, viper.GetString("data.source.url"))
	if err != nil {
		log.Error().Stack().Err(err).Msg("could not connect to source pool")
		return err
	}
	if err = src.Ping(ctx); err != nil {
		log.Error().Stack().Err(err).Msg("could not ping source database server")
		return err
	}

	dest, err := pgxpool.Connect(ctx, viper.GetString("data.dest.url"))
	if err != nil {
		log.Error().Stack().Err(err).Msg("could not connect to destination pool")
		return err
	}
	if err = dest.Ping(ctx); err != nil {
		log.Error().Stack().Err(err).Msg("could not ping destination database server")
		return err
	}

	SetPools(src, dest)
	return nil
}

// SetPools installs the pools directly; used by tests to substitute mocks
func SetPools(src PgxIface, dest PgxIface) {
	sourcePool = src
	destPool = dest
}

// Source returns the upstream Genius database pool
func Source() (PgxIface, error) {
	if sourcePool == nil {
		return nil, ErrNotConnected
	}
	return sourcePool, nil
}

// Dest returns the destination database pool; all derived tables live here
func Dest() (PgxIface, error) {
	if destPool == nil {
		return nil, ErrNotConnected
	}
	return destPool, nil
}
