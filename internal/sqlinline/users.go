package sqlinline

const QUpsertGoogleUser = `--sql 443d7f5d-967d-4e2b-8ff1-6fee61025377
insert into users (id, google_sub, email, name, picture, locale, timezone, properties, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::text, $5::text, 'UTC', $6::jsonb, now(), now())
on conflict (google_sub) do update set
    email = excluded.email,
    name = excluded.name,
    picture = excluded.picture,
    updated_at = now()
returning id, google_sub, email, name, picture, locale, timezone, properties, created_at, updated_at;
`

const QSelectUserByID = `--sql a88e22f0-c4ca-4b04-b0b6-cb7a5bb55d72
select id, google_sub, email, name, picture, locale, timezone, properties, created_at, updated_at
from users
where id = $1::uuid
limit 1;
`

const QUpdateUserProfile = `--sql f974a49e-3c0c-44d9-b1cf-9f4f027a938a
update users set
    name = $2::text,
    locale = $3::text,
    timezone = $4::text,
    properties = $5::jsonb,
    updated_at = now()
where id = $1::uuid
returning id, google_sub, email, name, picture, locale, timezone, properties, created_at, updated_at;
`
